// Package errcode defines the status codes returned by the HAL.
package errcode

// Code is a stable status identifier returned by every blocking HAL operation.
// It is a comparable string that implements error. A nil error is the OK
// status.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK      Code = "ok"
	Busy    Code = "busy"    // reserved: multi-master detection is not implemented
	Timeout Code = "timeout" // a bounded poll ran out of budget

	InvalidParams Code = "invalid_params"
	Unsupported   Code = "unsupported"
	NotEnabled    Code = "not_enabled"

	// Hardware error flags latched in the I2C status register.
	BusError        Code = "bus_error"
	ArbitrationLost Code = "arbitration_lost"
	AckFailure      Code = "ack_failure"
	Overrun         Code = "overrun"

	Error Code = "error" // generic fallback
)

// E keeps the operation that failed alongside its code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.Timeout) match a wrapped code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Wrap attaches op to a failing status. nil stays nil and the code is
// never changed.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: Of(err), Op: op, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
