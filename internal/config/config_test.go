package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"APP_PORT", "NEMID_CODE_LENGTH", "NEMID_LENGTH", "GENERATED_CODE_LENGTH",
		"MIRROR_HTTP_STATUS", "MAX_BODY_BYTES", "IDENTITY_BACKEND", "DOCS_ENDPOINT", "APP_ADDRESS",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8090", cfg.AppPort)
	assert.Equal(t, 4, cfg.NemIDCodeLength)
	assert.Equal(t, 9, cfg.NemIDLength)
	assert.Equal(t, 6, cfg.GeneratedCodeLength)
	assert.False(t, cfg.MirrorHTTPStatus)
	assert.Equal(t, 4096, cfg.MaxBodyBytes)
	assert.Equal(t, BackendSQLite, cfg.IdentityBackend)
	assert.Equal(t, "http://localhost:8090/docs", cfg.DocsURL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("NEMID_CODE_LENGTH", "6")
	t.Setenv("MIRROR_HTTP_STATUS", "true")
	t.Setenv("IDENTITY_BACKEND", "Dynamo")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()
	assert.Equal(t, 6, cfg.NemIDCodeLength)
	assert.True(t, cfg.MirrorHTTPStatus)
	assert.Equal(t, BackendDynamo, cfg.IdentityBackend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("NEMID_LENGTH", "nine")
	t.Setenv("GENERATED_CODE_LENGTH", "-3")
	t.Setenv("MIRROR_HTTP_STATUS", "maybe")

	cfg := Load()
	assert.Equal(t, 9, cfg.NemIDLength)
	assert.Equal(t, 6, cfg.GeneratedCodeLength)
	assert.False(t, cfg.MirrorHTTPStatus)
}
