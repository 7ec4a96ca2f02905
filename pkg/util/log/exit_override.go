// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"os"
)

// SetExitFunc allows setting a function that will be called to exit the
// process when a Fatal message is generated.
//
// Call with a nil function to undo.
func SetExitFunc(f func(int)) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	if f == nil {
		f = os.Exit
	}
	logging.mu.exit = f
}

// ResetExitFunc undoes any prior call to SetExitFunc.
func ResetExitFunc() {
	SetExitFunc(nil)
}

// Fatalf logs to the FATAL severity and exits the process with status 255.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logging.output(ctx, FATAL, format, args)
	logging.mu.Lock()
	exit := logging.mu.exit
	logging.mu.Unlock()
	exit(255)
}
