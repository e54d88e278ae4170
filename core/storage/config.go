package storage

import "time"

// Config locates the S3-compatible bucket that holds the remote save folders.
// Each configured drive_folder_id becomes a key prefix inside Bucket.
type Config struct {
	// Endpoint is host:port of the service; an http(s):// scheme is tolerated.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey and SecretKey are static credentials.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL selects https, regardless of any scheme in Endpoint.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds one prefix per save folder.
	Bucket string `mapstructure:"bucket" default:"saves"`
	// Region is used when init --remote creates the bucket. Empty lets the
	// service pick its default.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the wait for a response.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the configured timeout, falling back to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
