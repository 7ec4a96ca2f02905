// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is a small leveled logger for command-line tools. Entries are
// written one per line in the form
//
//	I261014 10:00:00.000000 [tag1,tag2=val] message
//
// where the leading letter is the severity. Context tags attached with
// logtags.AddTag are rendered between brackets. Arguments are formatted
// through the redact package; markers are stripped unless SetRedactable(true)
// was called.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/redact"
)

// Severity is the severity level of a log entry.
type Severity int32

const (
	// INFO is used for informational messages.
	INFO Severity = iota
	// WARNING is used for unexpected but recoverable conditions.
	WARNING
	// ERROR is used for failed operations.
	ERROR
	// FATAL terminates the process after logging.
	FATAL
)

var severityChars = [...]byte{INFO: 'I', WARNING: 'W', ERROR: 'E', FATAL: 'F'}

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	}
	return fmt.Sprintf("Severity(%d)", int32(s))
}

// SafeValue implements redact.SafeValue.
func (Severity) SafeValue() {}

type loggerT struct {
	verbosity  atomic.Int32
	redactable atomic.Bool

	mu struct {
		sync.Mutex
		w     io.Writer
		color *colorProfile
		now   func() time.Time
		exit  func(int)
	}
}

var logging = func() *loggerT {
	l := &loggerT{}
	l.mu.w = os.Stderr
	l.mu.color = stderrColorProfile()
	l.mu.now = time.Now
	l.mu.exit = os.Exit
	return l
}()

// SetOutput redirects log entries to w and disables colors. It returns a
// function restoring the previous destination, meant to be deferred by tests.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prevW, prevColor := logging.mu.w, logging.mu.color
	logging.mu.w, logging.mu.color = w, nil
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.w, logging.mu.color = prevW, prevColor
	}
}

// SetClock overrides the source of entry timestamps. A nil function restores
// the wall clock.
func SetClock(now func() time.Time) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	if now == nil {
		now = time.Now
	}
	logging.mu.now = now
}

// DisableColor turns off colored severity prefixes.
func DisableColor() {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.color = nil
}

// SetVerbosity sets the level up to which V returns true.
func SetVerbosity(level int32) { logging.verbosity.Store(level) }

// SetRedactable controls whether redaction markers are kept in the output.
func SetRedactable(b bool) { logging.redactable.Store(b) }

// V returns whether verbose logging at the given level is enabled.
func V(level int32) bool { return logging.verbosity.Load() >= level }

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logging.output(ctx, INFO, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logging.output(ctx, WARNING, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logging.output(ctx, ERROR, format, args)
}

// VEventf logs to the INFO severity if verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		logging.output(ctx, INFO, format, args)
	}
}

func (l *loggerT) output(ctx context.Context, sev Severity, format string, args []interface{}) {
	msg := redact.Sprintf(format, args...)
	if !l.redactable.Load() {
		msg = redact.RedactableString(msg.StripMarkers())
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	buf := formatEntry(ctx, l.mu.now(), sev, l.mu.color, msg)
	_, _ = l.mu.w.Write(buf)
}

// formatEntry renders one log line.
func formatEntry(
	ctx context.Context, now time.Time, sev Severity, cp *colorProfile, msg redact.RedactableString,
) []byte {
	var buf []byte
	if cp != nil {
		buf = append(buf, cp.prefix(sev)...)
	}
	buf = append(buf, severityChars[sev])
	if cp != nil {
		buf = append(buf, colorReset...)
		buf = append(buf, cp.timePrefix...)
	}
	buf = now.UTC().AppendFormat(buf, "060102 15:04:05.000000")
	if cp != nil {
		buf = append(buf, colorReset...)
	}
	buf = append(buf, ' ')
	if tags := formatTags(ctx); tags != "" {
		buf = append(buf, '[')
		buf = append(buf, tags...)
		buf = append(buf, "] "...)
	}
	buf = append(buf, string(msg)...)
	if n := len(buf); n == 0 || buf[n-1] != '\n' {
		buf = append(buf, '\n')
	}
	return buf
}
