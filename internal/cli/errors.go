package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Shell messages for errors and malformed input.
const (
	msgInvalidCommand  = "Invalid command. Please try again."
	msgNotFound        = "Contact not found."
	msgInvalidPhone    = "Phone number should be a string of digits."
	msgInvalidName     = "Name field cannot be empty."
	msgInvalidBirthday = "Birthday should be a valid date in the form YYYY MM DD."

	hintNameAndPhone = "Invalid input. Please enter name and phone number separated by a space."
	hintName         = "Invalid input. Please enter a name."
)

// errExit stops the shell loop.
var errExit = errors.New("exit requested")

// inputError reports a shell line with the wrong number of arguments.
type inputError struct {
	hint string
}

func (e *inputError) Error() string {
	return e.hint
}

// sysError marks failures of the environment (files, directories) rather
// than of user input.
type sysError struct {
	err error
}

func (e *sysError) Error() string {
	return e.err.Error()
}

func (e *sysError) Unwrap() error {
	return e.err
}

func sysErrorf(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// describeError turns an error from a shell command into the line printed
// to the user.
func describeError(err error) string {
	var ie *inputError
	switch {
	case errors.As(err, &ie):
		return ie.hint
	case errors.Is(err, types.ErrNotFound):
		return msgNotFound
	case errors.Is(err, types.ErrInvalidPhone):
		return msgInvalidPhone
	case errors.Is(err, types.ErrInvalidName):
		return msgInvalidName
	case errors.Is(err, types.ErrInvalidBirthday):
		return msgInvalidBirthday
	default:
		return err.Error()
	}
}
