// Package constants holds shared domain constants.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push gateway provider types.
const (
	PushProviderExpo = "expo"
	PushProviderFCM  = "fcm"
)

// Device platforms.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// Scheduled job names carried in Pub/Sub job events.
const (
	JobWeeklyRanking = "weekly_ranking"
	JobTokenPrune    = "token_prune"
)
