package model

// SubmissionStatus tags the outcome of one submit attempt.
type SubmissionStatus int

const (
	// Submitted: the endpoint accepted the submission.
	Submitted SubmissionStatus = iota
	// ValidationFailed: one or more answers broke their rule; nothing
	// was sent over the network.
	ValidationFailed
	// TransportFailed: the request itself failed or the endpoint
	// answered with a non-success status.
	TransportFailed
)

// SubmissionResult is the tagged outcome of a single submit attempt.
// FieldErrors is populated only for ValidationFailed, Message only for
// TransportFailed.
type SubmissionResult struct {
	Status      SubmissionStatus
	FieldErrors map[string]string
	Message     string
}

func Success() SubmissionResult {
	return SubmissionResult{Status: Submitted}
}

func ValidationFailure(fieldErrors map[string]string) SubmissionResult {
	return SubmissionResult{Status: ValidationFailed, FieldErrors: fieldErrors}
}

func TransportFailure(message string) SubmissionResult {
	return SubmissionResult{Status: TransportFailed, Message: message}
}
