package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidPeriod        ErrorCode = 102
	ErrCodeInvalidHorizon       ErrorCode = 103
	ErrCodeInvalidSplitRatio    ErrorCode = 104

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound         ErrorCode = 200
	ErrCodeColumnAlreadyExists  ErrorCode = 201
	ErrCodeColumnLengthMismatch ErrorCode = 202

	// Forecast errors (400-499)
	ErrCodeModelFitFailed ErrorCode = 400

	// Report errors (500-599)
	ErrCodeChartRenderFailed ErrorCode = 500
	ErrCodeExportFailed      ErrorCode = 501
	ErrCodeImportFailed      ErrorCode = 502

	// Market data errors (600-699)
	ErrCodeProviderUnsupported ErrorCode = 600
	ErrCodeFetchFailed         ErrorCode = 601
)
