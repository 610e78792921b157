// Package execx runs the external tools this module shells out to and gives
// their failures a uniform shape.
package execx

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Error wraps a failed invocation of an external program.
type Error struct {
	Program string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("running %s: %v", e.Program, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Read runs a program, waits for it to exit and returns its stdout as
// trimmed text. Stderr is passed through to the caller's stderr. Read fails
// if the program cannot be launched, exits non-zero or prints something
// that is not valid UTF-8.
func Read(program string, args ...string) (string, error) {
	cmd := exec.Command(program, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", &Error{Program: program, Err: err}
	}
	if !utf8.Valid(out) {
		return "", &Error{Program: program, Err: errors.New("stdout is not valid UTF-8")}
	}
	return strings.TrimSpace(string(out)), nil
}

// Run runs a program with inherited stdout and stderr and waits for it to
// exit.
func Run(program string, args ...string) error {
	return RunIn("", program, args...)
}

// RunIn is Run with the working directory of the program set to dir. An
// empty dir keeps the caller's working directory.
func RunIn(dir, program string, args ...string) error {
	cmd := exec.Command(program, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &Error{Program: program, Err: err}
	}
	return nil
}
