package constants

// Deployment stages.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// Error messages used throughout the API handlers
const (
	CodeNotFound       = "hts code not found"
	CountryUnsupported = "country of origin not supported"
	InvalidRequestBody = "invalid request body"
	CatalogUnavailable = "tariff catalog unavailable"
)
