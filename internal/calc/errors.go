package calc

// Error codes surfaced to callers. Decode and engine failures are not
// distinguished beyond "calculation failed" since both originate in a
// collaborator.
const (
	CodeFileNotFound      = "file_not_found"
	CodeInvalidMode       = "invalid_mode"
	CodeCalculationFailed = "calculation_failed"
)

// Error is the structured failure result of a calculation. Every pipeline
// failure is converted into one of these at the service boundary; nothing
// propagates as a raised fault.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
