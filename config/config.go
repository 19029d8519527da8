package config

import (
	"strings"
	"time"
)

const (
	defaultMaxRequestBodySize = "10MB"
	defaultAuthTimeout        = 15 * time.Second
	defaultFetchTimeout       = 30 * time.Second
	defaultRetryMax           = 5
	defaultRetryBaseDelay     = 500 * time.Millisecond
	defaultRetryMaxDelay      = 30 * time.Second
	defaultRelayBuffer        = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase project holding the document store and messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Auth configuration for the identity provider
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Storage configuration for remote images and the local cache
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Replica configuration for the change feeds
	Replica *ReplicaConfig `json:"replica" yaml:"replica"`

	// SearchHistory configuration for the local search log
	SearchHistory *SearchHistoryConfig `json:"searchHistory" yaml:"searchHistory"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Notification configuration for marketplace pushes
	Notification *NotificationConfig `json:"notification" yaml:"notification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Web API key of the Firebase project, used by the Identity Toolkit
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Bound on every sign-in call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Minimum password length accepted at sign-up
	MinPasswordLength int `json:"minPasswordLength" yaml:"minPasswordLength"`
}

// StorageConfig defines image storage configuration
type StorageConfig struct {
	// gocloud bucket URL of the remote image store (gs://, s3://, file://, mem://)
	RemoteBucketURL string `json:"remoteBucketUrl" yaml:"remoteBucketUrl"`

	// Directory of the local image cache
	CacheDir string `json:"cacheDir" yaml:"cacheDir"`

	// Bound on a remote fetch
	FetchTimeout time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`

	// Key prefix of uploaded images
	UploadPrefix string `json:"uploadPrefix" yaml:"uploadPrefix"`
}

// ReplicaConfig defines change feed configuration
type ReplicaConfig struct {
	// Revisit entities whose references arrived late
	ReresolvePending bool `json:"reresolvePending" yaml:"reresolvePending"`

	// Watched collections, all of them when empty
	Collections []string `json:"collections" yaml:"collections"`

	Retry RetryConfig `json:"retry" yaml:"retry"`
}

// RetryConfig bounds re-subscription of a failed change feed
type RetryConfig struct {
	MaxRetries uint64        `json:"maxRetries" yaml:"maxRetries"`
	BaseDelay  time.Duration `json:"baseDelay" yaml:"baseDelay"`
	MaxDelay   time.Duration `json:"maxDelay" yaml:"maxDelay"`
}

// SearchHistoryConfig defines the local search history store
type SearchHistoryConfig struct {
	Path string `json:"path" yaml:"path"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Replica events queued for publishing before new ones are dropped
	RelayBuffer int `json:"relayBuffer" yaml:"relayBuffer"`
}

// NotificationConfig defines marketplace push notifications
type NotificationConfig struct {
	// Topic every device subscribes to for new listings
	MarketplaceTopic string `json:"marketplaceTopic" yaml:"marketplaceTopic"`

	// Expected audience of Pub/Sub push tokens
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// New loads config.yaml from the working directory or a nearby config
// directory, then applies environment overrides and defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Timeout <= 0 {
		cfg.Auth.Timeout = defaultAuthTimeout
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.FetchTimeout <= 0 {
		cfg.Storage.FetchTimeout = defaultFetchTimeout
	}
	if cfg.Replica == nil {
		cfg.Replica = &ReplicaConfig{}
	}
	if cfg.Replica.Retry.MaxRetries == 0 {
		cfg.Replica.Retry.MaxRetries = defaultRetryMax
	}
	if cfg.Replica.Retry.BaseDelay <= 0 {
		cfg.Replica.Retry.BaseDelay = defaultRetryBaseDelay
	}
	if cfg.Replica.Retry.MaxDelay <= 0 {
		cfg.Replica.Retry.MaxDelay = defaultRetryMaxDelay
	}
	if cfg.PubSub != nil && cfg.PubSub.RelayBuffer <= 0 {
		cfg.PubSub.RelayBuffer = defaultRelayBuffer
	}
}
