// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import "github.com/sirupsen/logrus"

// logEntry resolves the logger a Context should use: the caller-supplied
// one if WithLogger was passed, else the process-wide standard logger
// (which already behaves as a quiet default when nothing has configured
// output).
func logEntry(o *options, corrID string) *logrus.Entry {
	base := o.logger
	if base == nil {
		base = logrus.NewEntry(logrus.StandardLogger())
	}
	return base.WithField("ltjson_ctx", corrID)
}
