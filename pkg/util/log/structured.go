// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"strings"

	"github.com/cockroachdb/logtags"
)

// formatTags renders the logtags of ctx as "k1,k2=v2", or "" if there are
// none.
func formatTags(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return ""
	}
	var buf strings.Builder
	for i, t := range tags.Get() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(t.Key())
		if v := t.Value(); v != nil {
			if len(t.Key()) > 1 {
				buf.WriteByte('=')
			}
			buf.WriteString(t.ValueStr())
		}
	}
	return buf.String()
}
