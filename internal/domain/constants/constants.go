// Package constants groups string values shared between configuration and wiring.
package constants

// Deployment environments reported in env.env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers accepted by pubsub.provider.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// HeaderXAuth carries the bearer token on requests and on register/login responses.
const HeaderXAuth = "x-auth"
