package exchange

import "errors"

// Failure taxonomy for ledger operations. Handlers map these to transport
// status codes; everything raised inside an atomic unit of work aborts and
// rolls back the whole unit before surfacing.
var (
	// ErrNotFound reports a missing pair or assignment.
	ErrNotFound = errors.New("record not found")

	// ErrValidation reports illegal input (bad household ids, unparseable
	// or out-of-range hours).
	ErrValidation = errors.New("invalid input")

	// ErrDirectionAmbiguous reports an assignment whose two households do
	// not match the resolved pair's two households.
	ErrDirectionAmbiguous = errors.New("cannot resolve direction")

	// ErrConcurrencyConflict reports write contention; the caller should
	// retry the operation.
	ErrConcurrencyConflict = errors.New("concurrent write conflict")

	// ErrPersistence reports a storage failure after full rollback.
	ErrPersistence = errors.New("persistence failure")
)
