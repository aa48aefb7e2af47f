package config

import "testing"

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.Postgres == nil {
		t.Fatal("postgres section should be initialized when absent from YAML")
	}
	if cfg.Auth == nil {
		t.Fatal("auth section should be initialized when absent from YAML")
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("access token TTL = %v, want %v", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	}
	if cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("refresh token TTL = %v, want %v", cfg.Auth.RefreshTokenTTL, defaultRefreshTokenTTL)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("max request body size = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{
		AccessTokenTTL:  defaultAccessTokenTTL / 2,
		RefreshTokenTTL: defaultRefreshTokenTTL / 2,
	}}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL/2 {
		t.Fatalf("access token TTL = %v, want %v", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL/2)
	}
	if cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL/2 {
		t.Fatalf("refresh token TTL = %v, want %v", cfg.Auth.RefreshTokenTTL, defaultRefreshTokenTTL/2)
	}
	if cfg.HTTP.MaxRequestBodySize != "1MB" {
		t.Fatalf("max request body size = %q, want %q", cfg.HTTP.MaxRequestBodySize, "1MB")
	}
}
