package domain

import "errors"

// EmptyProductNameMessage is shown inline when the product name is blank
const EmptyProductNameMessage = "Please enter a product name to analyze."

// AnalysisFailedPrefix precedes every analysis failure shown to the user
const AnalysisFailedPrefix = "An error occurred during analysis. "

// analysisFailedMessage is the fixed explanation for any remote or decode failure
const analysisFailedMessage = "Failed to get product analysis. The API may have returned an invalid format or could not find the product."

var (
	// ErrEmptyProductName is returned when the product name is empty after trimming
	ErrEmptyProductName = errors.New("product name is required")

	// ErrAnalysisInProgress is returned when a panel already has a request in flight
	ErrAnalysisInProgress = errors.New("analysis already in progress")

	// ErrGeminiAPIFailure is returned when the Gemini API call fails
	ErrGeminiAPIFailure = errors.New("Gemini API request failed")

	// ErrMissingAPIKey is returned by the Gemini client when no API key is configured
	ErrMissingAPIKey = errors.New("Gemini API key is not configured")

	// ErrInvalidResponse is returned when the model output is not a valid analysis
	ErrInvalidResponse = errors.New("invalid analysis response")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrSessionNotFound is returned when a session has no live panel
	ErrSessionNotFound = errors.New("session not found")
)

// AnalysisError collapses API and decode failures into one user-facing error.
// The underlying cause stays reachable through errors.Is / errors.As.
type AnalysisError struct {
	Cause error
}

func (e *AnalysisError) Error() string {
	return analysisFailedMessage
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// UserMessage is the text rendered in the failure state
func (e *AnalysisError) UserMessage() string {
	return AnalysisFailedPrefix + e.Error()
}

// Detail returns the underlying error text for diagnostics
func (e *AnalysisError) Detail() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}
