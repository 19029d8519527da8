package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// Firebase Cloud Messaging topics.
const (
	TopicMarketplace  = "marketplace"
	TopicSellerPrefix = "seller-"
)

// MaxSearchHistory caps the entries kept per user.
const MaxSearchHistory = 50
