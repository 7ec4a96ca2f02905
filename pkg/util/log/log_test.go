// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	SetClock(func() time.Time {
		return time.Date(2026, 10, 14, 9, 30, 0, 123456000, time.UTC)
	})
	t.Cleanup(func() {
		restore()
		SetClock(nil)
		SetVerbosity(0)
		SetRedactable(false)
	})
	return &buf
}

func TestLogFormat(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.Background()

	Infof(ctx, "hello %s", "world")
	ctx = logtags.AddTag(ctx, "n", 1)
	ctx = logtags.AddTag(ctx, "file", "alice.yaml")
	Warningf(ctx, "skipped %d spans", 3)
	Errorf(ctx, "done\n")

	require.Equal(t, ""+
		"I261014 09:30:00.123456 hello world\n"+
		"W261014 09:30:00.123456 [n1,file=alice.yaml] skipped 3 spans\n"+
		"E261014 09:30:00.123456 [n1,file=alice.yaml] done\n",
		buf.String())
}

func TestLogRedactable(t *testing.T) {
	buf := captureLogs(t)
	SetRedactable(true)
	Infof(context.Background(), "value %s, safe %s", "secret", redact.Safe("public"))
	require.Equal(t, "I261014 09:30:00.123456 value ‹secret›, safe public\n", buf.String())
}

func TestVerbosity(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.Background()
	VEventf(ctx, 1, "hidden")
	require.False(t, V(1))
	SetVerbosity(2)
	require.True(t, V(1))
	VEventf(ctx, 1, "shown")
	require.Equal(t, "I261014 09:30:00.123456 shown\n", buf.String())
}

func TestFatalf(t *testing.T) {
	buf := captureLogs(t)
	var code int
	SetExitFunc(func(c int) { code = c })
	defer ResetExitFunc()
	Fatalf(context.Background(), "boom")
	require.Equal(t, 255, code)
	require.Equal(t, "F261014 09:30:00.123456 boom\n", buf.String())
}

func TestFormatTags(t *testing.T) {
	ctx := logtags.AddTag(context.Background(), "cmd", "overlap")
	ctx = logtags.AddTag(ctx, "n", 1)
	require.Equal(t, "cmd=overlap,n1", formatTags(ctx))
	require.Equal(t, "", formatTags(context.Background()))
}

func TestEveryN(t *testing.T) {
	start := time.Now()
	e := Every(time.Minute)
	check := func(at time.Duration, wantOK bool, wantSuppressed int) {
		t.Helper()
		ok, n := e.shouldLog(start.Add(at))
		require.Equal(t, wantOK, ok)
		require.Equal(t, wantSuppressed, n)
	}
	check(0, true, 0)
	check(time.Second, false, 0)
	check(2*time.Second, false, 0)
	check(time.Minute, true, 2)
	check(time.Minute+time.Second, false, 0)

	SetClock(func() time.Time { return start.Add(time.Hour) })
	defer SetClock(nil)
	ok, n := e.ShouldLog()
	require.True(t, ok)
	require.Equal(t, 1, n)
}

func TestColorProfileForTerm(t *testing.T) {
	require.Equal(t, colorProfile256, colorProfileForTerm("xterm-256color"))
	require.Equal(t, colorProfile8, colorProfileForTerm("screen"))
	require.Equal(t, colorProfile8, colorProfileForTerm("tmux"))
	require.Nil(t, colorProfileForTerm("dumb"))
}
