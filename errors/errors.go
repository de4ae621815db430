package errors

import "fmt"

var (
	ErrNotFound           = fmt.Errorf("not found")
	ErrDuplicateUsername  = fmt.Errorf("username already taken")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrUnauthorized       = fmt.Errorf("operation not allowed")
	ErrNoop               = fmt.Errorf("nothing to do")
	ErrBanned             = fmt.Errorf("user is banned")
	ErrStorage            = fmt.Errorf("storage failure")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrSessionClosed      = fmt.Errorf("session closed")
	ErrSlowConsumer       = fmt.Errorf("outbound buffer full")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrOnlyCensoredFiles  = fmt.Errorf("censored directory contains directories")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
)
