/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package logger builds the structured logger used by the dxcatalog CLI.
//
// Output is JSON from a zap core, exposed to the rest of the program as a
// logr.Logger (via zapr) and carried in context.Context. Library packages
// under dxcore never log; they expose zapcore.ObjectMarshaler instead so
// values such as catalog.Code render as structured fields.
package logger

import (
	"context"
	"errors"
	"io"
	"strings"
	"syscall"

	dxerrors "dirpx.dev/dxcatalog/dxcore/errors"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// TimeStampKey is the JSON key holding the entry time.
	TimeStampKey = "timestamp"

	// MessageKey is the JSON key holding the log message.
	MessageKey = "message"

	// CommandKey is attached to every entry emitted while a command runs.
	CommandKey = "command"
)

// ParseLevel maps a level name ("debug", "info", "warn", "error") onto a
// zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return zapcore.InfoLevel, &dxerrors.ParseError{Type: "LogLevel", Value: s}
	}
	return lvl, nil
}

// New returns a JSON logger writing to w at the given minimum level,
// together with the underlying zap logger so the caller can Sync it.
func New(w io.Writer, level zapcore.Level) (logr.Logger, *zap.Logger) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)

	zl := zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
	return zapr.NewLogger(zl), zl
}

// WithLogger returns a copy of ctx carrying log.
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger stored in ctx, or a logger that discards
// everything when none was stored.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}

// Sync flushes zl, ignoring the errors stderr and pipes report when they
// cannot be synced.
func Sync(zl *zap.Logger) error {
	if zl == nil {
		return nil
	}
	if err := zl.Sync(); err != nil && !isIgnorableSyncError(err) {
		return err
	}
	return nil
}

func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.ENOTTY) ||
		errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.EBADF)
}
