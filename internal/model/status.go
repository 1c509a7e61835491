package model

// JobStatus represents the status of a conversion job
type JobStatus string

const (
	// JobStatusPending means the job is part of a batch but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusConverting means the encoder is running for this job
	JobStatusConverting JobStatus = "Converting"

	// JobStatusCompleted means the encoder finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the encoder failed or could not be started
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an active state
func (js JobStatus) IsActive() bool {
	return js == JobStatusConverting
}

// IsFinished returns true if the job is in a finished state (completed or error)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusError
}
