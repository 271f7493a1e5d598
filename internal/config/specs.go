// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	Environment string `envconfig:"environment" default:"development"`

	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	OIDCIssuer      string   `envconfig:"oidc_issuer"`
	JWKSURL         string   `envconfig:"jwks_url"`
	AllowedSubjects []string `envconfig:"allowed_subjects"`
	RequiredScope   string   `envconfig:"required_scope" default:"campaigns:api"`

	RedisURL string `envconfig:"redis_url" default:"redis://localhost:6379"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	RegistrationWebhookSecret string `envconfig:"registration_webhook_secret"`

	MetaClientID           string        `envconfig:"meta_client_id"`
	MetaClientSecret       string        `envconfig:"meta_client_secret"`
	GoogleClientID         string        `envconfig:"google_client_id"`
	GoogleClientSecret     string        `envconfig:"google_client_secret"`
	TumblrConsumerKey      string        `envconfig:"tumblr_consumer_key"`
	TumblrConsumerSecret   string        `envconfig:"tumblr_consumer_secret"`
	TikTokClientKey        string        `envconfig:"tiktok_client_key"`
	TikTokClientSecret     string        `envconfig:"tiktok_client_secret"`
	LinkedInClientID       string        `envconfig:"linkedin_client_id"`
	LinkedInClientSecret   string        `envconfig:"linkedin_client_secret"`
	OAuthRedirectBase      string        `envconfig:"oauth_redirect_base" default:"http://localhost:8080"`
	PlatformRequestTimeout time.Duration `envconfig:"platform_request_timeout" default:"30s"`

	TokenRefreshInterval time.Duration `envconfig:"token_refresh_interval" default:"15m"`
	TokenRefreshWindow   time.Duration `envconfig:"token_refresh_window" default:"1h"`

	PublishWorkerInterval time.Duration `envconfig:"publish_worker_interval" default:"10s"`
	PublishWorkerEnabled  bool          `envconfig:"publish_worker_enabled" default:"true"`
}
