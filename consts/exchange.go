package consts

const (
	// Assignment status that qualifies for ledger conversion
	AssignmentStatusCompleted = "completed"

	// Request types that carry an hour exchange
	RequestTypeExchange = "exchange"
	RequestTypeMixed    = "mixed"

	// ProcessAssignment result statuses
	ProcessStatusProcessed = "processed"
	ProcessStatusSkipped   = "skipped"
	ProcessStatusFailed    = "failed"

	// Quantization: hours_worked at or above this counts as a full work day
	FullDayHoursThreshold = 6

	// Pagination config
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100

	// Default worker config
	DefaultWorkerNumber     = 1
	DefaultIntervalInSec    = 2
	DefaultAcquireBatchSize = 10
)
