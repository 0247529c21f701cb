package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "PORT", "REFRESH_INTERVAL", "CORS_ORIGINS", "DB_MIGRATE", "LOCALE"} {
			t.Setenv(key, "")
		}

		cfg := Load()

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.True(t, cfg.Database.Migrate)
		assert.Equal(t, ":8080", cfg.HTTP.Addr)
		assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
		assert.Equal(t, 5*time.Second, cfg.Refresh.Interval)
		assert.Equal(t, "en", cfg.Locale)
	})

	t.Run("значения из окружения", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("PORT", "3000")
		t.Setenv("REFRESH_INTERVAL", "10000")
		t.Setenv("FETCH_TIMEOUT", "2s")
		t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
		t.Setenv("DB_MIGRATE", "false")

		cfg := Load()

		assert.Equal(t, "db", cfg.Database.Host)
		assert.False(t, cfg.Database.Migrate)
		assert.Equal(t, ":3000", cfg.HTTP.Addr)
		assert.Equal(t, 10*time.Second, cfg.Refresh.Interval)
		assert.Equal(t, 2*time.Second, cfg.Refresh.FetchTimeout)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSOrigins)
	})

	t.Run("некорректная длительность заменяется значением по умолчанию", func(t *testing.T) {
		t.Setenv("REFRESH_INTERVAL", "soon")

		assert.Equal(t, 5*time.Second, Load().Refresh.Interval)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "h", Port: "1", User: "u", Password: "p", DBName: "d", SSLMode: "disable"}

	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", cfg.DSN())
}
