// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Unknown-location policies for donors without coordinates
const (
	UnknownLocationExclude    = "exclude"
	UnknownLocationPseudoNear = "pseudo_near"
)
