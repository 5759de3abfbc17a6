package gatewayepayco

import "fmt"

// InitError signals that the embedded strategy could not be set up (script
// load, handle construction or widget open). It is recovered internally by
// the sticky fallback and only reaches the donor if the redirect strategy
// fails too.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("gateway initialization failed: %s", e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// SessionError signals that hosted-session creation failed. It is terminal
// for the submission attempt; the donor may retry.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("gateway session creation failed: %s", e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}
