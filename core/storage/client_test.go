package storage_test

import (
	"testing"
	"time"

	"save-sync/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
	}{
		{"Bare Host", "localhost:9000", false},
		{"HTTP Scheme Stripped", "http://minio.lan:9000", false},
		{"HTTPS Scheme Stripped", "https://s3.eu-west-1.amazonaws.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(storage.Config{
				Endpoint:  tt.endpoint,
				AccessKey: "sync",
				SecretKey: "secret",
				UseSSL:    tt.useSSL,
				Bucket:    "saves",
			})
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}

	t.Run("Endpoint With Path", func(t *testing.T) {
		_, err := storage.NewClient(storage.Config{Endpoint: "localhost:9000/saves"})
		assert.ErrorContains(t, err, "failed to create minio client")
	})
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.Config{}.Timeout())
	assert.Equal(t, 30*time.Second, storage.Config{TimeoutSeconds: -1}.Timeout())
	assert.Equal(t, 5*time.Second, storage.Config{TimeoutSeconds: 5}.Timeout())
}
