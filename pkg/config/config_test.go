package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_DefaultsDesarrollo(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 1440, cfg.JWT.Expiration, "el token dura 24h por defecto")
	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
	assert.True(t, cfg.Auth.DemoMode)
	assert.True(t, cfg.Auth.LoginFallback)
	assert.Equal(t, "/api", cfg.HTTP.Prefix)
	require.NoError(t, cfg.Validate(), "en desarrollo se tolera el secreto por defecto")
	assert.True(t, cfg.UsesDefaultSecret())
}

func TestFromViper_ProduccionApagaModoDemo(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("JWT_SECRET", "un-secreto-real")
	cfg := fromViper(v)

	assert.False(t, cfg.Auth.DemoMode)
	assert.False(t, cfg.Auth.LoginFallback)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ProduccionSinSecretoFalla(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	cfg := fromViper(v)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "mongo")
	cfg := fromViper(v)

	assert.Error(t, cfg.Validate())
}

func TestFromViper_FlagsExplicitos(t *testing.T) {
	v := viper.New()
	v.Set("AUTH_DEMO_MODE", "false")
	v.Set("AUTH_LOGIN_FALLBACK", "false")
	v.Set("HTTP_PORT", "9090")
	cfg := fromViper(v)

	assert.False(t, cfg.Auth.DemoMode)
	assert.False(t, cfg.Auth.LoginFallback)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "btp", Password: "p@ss:w/rd", DBName: "btp", SSLMode: "disable"}
	assert.Equal(t, "postgres://btp:p%40ss%3Aw%2Frd@db:5432/btp?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
