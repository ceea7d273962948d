package main

import (
	"fmt"
	"os"

	goerrors "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// withStackTrace wraps err with the caller's stack trace. An error that
// already carries one is returned unchanged.
func withStackTrace(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, 1)
}

// errorStack returns err's stack trace, or "" if it has none.
func errorStack(err error) string {
	var goErr *goerrors.Error
	if goerrors.As(err, &goErr) {
		return goErr.ErrorStack()
	}
	return ""
}

// recoverPanic turns a panic into an error with a stack trace and passes it
// to onPanic. It must be called from a defer statement.
func recoverPanic(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec)
		}
		onPanic(withStackTrace(err))
	}
}

// checkForErrorsAndExit logs err, with its stack trace at debug level, and
// exits non-zero. A nil err exits 0.
func checkForErrorsAndExit(logger *logrus.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}
		logger.Error(err.Error())
		if stack := errorStack(err); stack != "" {
			logger.Debug(stack)
		}
		os.Exit(1)
	}
}
