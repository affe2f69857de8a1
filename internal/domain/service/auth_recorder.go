package service

// Auth outcomes reported to AuthRecorder.
const (
	AuthOutcomeSuccess            = "success"
	AuthOutcomeInvalidInput       = "invalid_input"
	AuthOutcomeDuplicateEmail     = "duplicate_email"
	AuthOutcomeInvalidCredentials = "invalid_credentials"
	AuthOutcomeUnauthorized       = "unauthorized"
	AuthOutcomeError              = "error"
)

// AuthRecorder counts authentication outcomes per operation.
type AuthRecorder interface {
	RecordAuth(operation, outcome string)
}
