package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedOrigins(t *testing.T) {
	orig := AppConfig
	defer func() { AppConfig = orig }()

	AppConfig.CORSOrigins = " http://localhost:5173, https://eventra.app ,,"
	assert.Equal(t, []string{"http://localhost:5173", "https://eventra.app"}, AllowedOrigins())

	AppConfig.CORSOrigins = ""
	assert.Empty(t, AllowedOrigins())
}

func TestIsProduction(t *testing.T) {
	orig := AppConfig
	defer func() { AppConfig = orig }()

	AppConfig.Env = "production"
	assert.True(t, IsProduction())
	AppConfig.Env = "development"
	assert.False(t, IsProduction())
}

func TestValidateRequiresJWTSecretInProduction(t *testing.T) {
	orig := AppConfig
	defer func() { AppConfig = orig }()

	AppConfig.Env = "production"
	AppConfig.JWTSecret = ""
	assert.EqualError(t, Validate(), "JWT_SECRET must be set in production")

	AppConfig.JWTSecret = "s3cret"
	assert.NoError(t, Validate())

	AppConfig.Env = "development"
	AppConfig.JWTSecret = ""
	assert.NoError(t, Validate())
}
