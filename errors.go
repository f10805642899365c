package steamworks

import "go.trai.ch/zerr"

var (
	// ErrSteamNotRunning is returned by Init when the Steam client is not
	// running or the native library cannot be loaded.
	ErrSteamNotRunning = zerr.New("steam is not running")

	// ErrAlreadyInitialized is returned by Init while another client holds
	// the process-wide SDK slot.
	ErrAlreadyInitialized = zerr.New("steam api already initialized in this process")

	// ErrIOFailure is reported for async call results that failed in
	// transit to the Steam servers.
	ErrIOFailure = zerr.New("io failure talking to the steam servers")

	// ErrCallFailed is the generic failure for native calls that only
	// report success as a boolean.
	ErrCallFailed = zerr.New("steam api call failed")

	// ErrNotLoggedOn is returned when an operation needs a connection to
	// the Steam servers and there is none.
	ErrNotLoggedOn = zerr.New("not logged on")

	// ErrLimitExceeded is returned when a rate or size limit was hit.
	ErrLimitExceeded = zerr.New("limit exceeded")

	// ErrInvalidParam is returned for parameters the native side rejected.
	ErrInvalidParam = zerr.New("invalid parameter")

	// ErrAccessDenied is returned when the current account may not perform
	// the operation.
	ErrAccessDenied = zerr.New("access denied")

	// ErrTimeout is returned when the Steam servers did not respond.
	ErrTimeout = zerr.New("operation timed out")

	// ErrBusy is returned when the Steam servers are busy.
	ErrBusy = zerr.New("steam servers busy")

	// ErrNoMatch is returned when the requested object does not exist.
	ErrNoMatch = zerr.New("no match")

	errGenericFailure = zerr.New("steam api failure")
)

// Result is a native EResult code.
type Result int32

const (
	ResultOK                 Result = 1
	ResultFail               Result = 2
	ResultNoConnection       Result = 3
	ResultInvalidParam       Result = 8
	ResultBusy               Result = 10
	ResultInvalidState       Result = 11
	ResultAccessDenied       Result = 15
	ResultTimeout            Result = 16
	ResultServiceUnavailable Result = 20
	ResultLimitExceeded      Result = 25
	ResultNoMatch            Result = 42
	ResultNotLoggedOn        Result = 51
	ResultIOFailure          Result = 71
)

// Err maps the code to a stable sentinel error, or nil for OK. Codes
// without a dedicated sentinel map to a generic failure carrying the raw
// code as a field.
func (r Result) Err() error {
	switch r {
	case ResultOK:
		return nil
	case ResultIOFailure, ResultNoConnection:
		return ErrIOFailure
	case ResultNotLoggedOn:
		return ErrNotLoggedOn
	case ResultInvalidParam:
		return ErrInvalidParam
	case ResultAccessDenied:
		return ErrAccessDenied
	case ResultTimeout, ResultServiceUnavailable:
		return ErrTimeout
	case ResultBusy:
		return ErrBusy
	case ResultLimitExceeded:
		return ErrLimitExceeded
	case ResultNoMatch:
		return ErrNoMatch
	default:
		return zerr.With(errGenericFailure, "eresult", int32(r))
	}
}

// callFailed annotates ErrCallFailed with the flat call that reported false.
func callFailed(call string) error {
	return zerr.With(ErrCallFailed, "call", call)
}
