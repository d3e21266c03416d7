// Package fileprobe checks whether a file can be opened for reading.
//
// Failure is reported as a value: Open never returns an error, callers branch
// on Result.OK and print Result.Err when it is set.
package fileprobe

import (
	"errors"
	"fmt"
	"syscall"
)

// OpenFailed describes why a file could not be opened.
type OpenFailed struct {
	Path   string
	Reason string
	Errno  syscall.Errno // zero when the failure did not come from a system call
}

func (e *OpenFailed) Error() string {
	return fmt.Sprintf("open %s: %s", e.Path, e.Reason)
}

// Unwrap exposes the errno so callers can match it with errors.Is (e.g. fs.ErrNotExist).
func (e *OpenFailed) Unwrap() error {
	if e.Errno == 0 {
		return nil
	}

	return e.Errno
}

// Result is the outcome of Open.
type Result struct {
	Path string
	Err  *OpenFailed
}

// OK reports whether the open succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// String returns the message printed by the open command.
func (r Result) String() string {
	if r.OK() {
		return "open succeeded"
	}

	return "open failed: " + r.Err.Reason
}

// Open opens path read-only, closes it again and reports the outcome.
func Open(path string) Result {
	err := openReadOnly(path)
	if err == nil {
		return Result{Path: path}
	}

	failed := &OpenFailed{Path: path, Reason: err.Error()}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		failed.Errno = errno
		failed.Reason = errno.Error()
	}

	return Result{Path: path, Err: failed}
}
