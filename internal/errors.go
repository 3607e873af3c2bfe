package internal

import "fmt"

type BaseError string

func (e BaseError) Error() string {
	return string(e)
}

const (
	ErrMissingParam BaseError = "missing parameter"
	ErrInvalidParam BaseError = "invalid parameter"
	ErrNotFound     BaseError = "not found"
	ErrExists       BaseError = "already exists"

	ErrTransientDice      BaseError = "dice unavailable"
	ErrStatBuild          BaseError = "invalid fighter"
	ErrUnknownStance      BaseError = "unknown stance"
	ErrInitiativeDeadlock BaseError = "initiative unresolved"
	ErrTurnLimit          BaseError = "turn limit reached"
)

type ErrorWrapper struct {
	Err     error
	Message string
	Cause   error
}

func (e *ErrorWrapper) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", e.Err, e.Message, e.Cause)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *ErrorWrapper) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func NewMissingParamError(param string) error {
	return &ErrorWrapper{
		Err:     ErrMissingParam,
		Message: param,
	}
}

func NewInvalidParamError(msg string) error {
	return &ErrorWrapper{
		Err:     ErrInvalidParam,
		Message: msg,
	}
}

// NewTransientDiceError marks a failed or timed out draw. The cause is kept
// so callers can still match context.DeadlineExceeded.
func NewTransientDiceError(msg string, cause error) error {
	return &ErrorWrapper{
		Err:     ErrTransientDice,
		Message: msg,
		Cause:   cause,
	}
}

func NewStatBuildError(fighter, msg string) error {
	return &ErrorWrapper{
		Err:     ErrStatBuild,
		Message: fmt.Sprintf("%s: %s", fighter, msg),
	}
}

func NewUnknownStanceError(stance string) error {
	return &ErrorWrapper{
		Err:     ErrUnknownStance,
		Message: fmt.Sprintf("%q", stance),
	}
}

func NewInitiativeDeadlockError(attempts int) error {
	return &ErrorWrapper{
		Err:     ErrInitiativeDeadlock,
		Message: fmt.Sprintf("still tied after %d rolls", attempts),
	}
}

func NewTurnLimitError(limit int) error {
	return &ErrorWrapper{
		Err:     ErrTurnLimit,
		Message: fmt.Sprintf("no winner after %d turns", limit),
	}
}
