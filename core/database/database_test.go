package database

import (
	"testing"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid MySQL Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "save_sync",
			TimeoutSeconds: 2,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unknown Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "postgres"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})
}

func TestDialector(t *testing.T) {
	d, err := Dialector(Config{Driver: DriverSQLite, Path: "history.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = Dialector(Config{Driver: DriverMySQL, Host: "db", Port: 3306})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = Dialector(Config{Driver: DriverSQLite})
	assert.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(Config{
		Host:     "db.local",
		Port:     3307,
		User:     "sync",
		Password: "p@ss:wo/rd",
		Name:     "saves",
	})

	parsed, err := gomysql.ParseDSN(dsn)
	require.NoError(t, err)

	assert.Equal(t, "sync", parsed.User)
	assert.Equal(t, "p@ss:wo/rd", parsed.Passwd)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "db.local:3307", parsed.Addr)
	assert.Equal(t, "saves", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, time.Local, parsed.Loc)
	assert.Equal(t, 30*time.Second, parsed.Timeout)
	assert.Equal(t, 30*time.Second, parsed.ReadTimeout)
	assert.Contains(t, dsn, "charset=utf8mb4")
}
