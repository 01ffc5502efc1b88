package model

// QueryStatus represents the status of a recipe query
type QueryStatus string

const (
	// QueryStatusPending means the query is created but not started
	QueryStatusPending QueryStatus = "Pending"

	// QueryStatusRunning means requests are in flight
	QueryStatusRunning QueryStatus = "Running"

	// QueryStatusCompleted means the query finished and results are available
	QueryStatusCompleted QueryStatus = "Completed"

	// QueryStatusCancelled means the query was cancelled or superseded
	QueryStatusCancelled QueryStatus = "Cancelled"

	// QueryStatusError means the query failed
	QueryStatusError QueryStatus = "Error"
)

// String returns the string representation of QueryStatus
func (qs QueryStatus) String() string {
	return string(qs)
}

// IsActive returns true if the query is still producing results
func (qs QueryStatus) IsActive() bool {
	return qs == QueryStatusPending || qs == QueryStatusRunning
}

// IsFinished returns true if the query is in a finished state (completed, cancelled, or error)
func (qs QueryStatus) IsFinished() bool {
	return qs == QueryStatusCompleted || qs == QueryStatusCancelled || qs == QueryStatusError
}
