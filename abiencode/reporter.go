// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abiencode

import (
	"errors"
	"fmt"

	"github.com/luxfi/log"
	"go.uber.org/zap"

	"github.com/luxfi/kmscodec/fhetype"
)

var (
	// ErrPayloadLengthMismatch marks a plaintext whose payload does not fit its
	// declared type. The element is replaced by a zero value.
	ErrPayloadLengthMismatch = errors.New("plaintext payload length mismatch")
	// ErrUnrecognizedType marks a plaintext whose type discriminator is
	// unknown. The element is dropped.
	ErrUnrecognizedType = errors.New("unrecognized plaintext type")
)

// Anomaly describes a plaintext the encoder recovered from.
type Anomaly struct {
	// Index is the position in the input slice.
	Index   int
	FheType int32
	// Expected and Actual are payload lengths in bytes. For uint256-encoded
	// types Expected is the maximum accepted length.
	Expected int
	Actual   int
	Err      error
}

func (a Anomaly) Error() string {
	if errors.Is(a.Err, ErrUnrecognizedType) {
		return fmt.Sprintf("plaintext %d: %v", a.Index, a.Err)
	}
	return fmt.Sprintf("plaintext %d (%s): %v: expected %d, got %d",
		a.Index, typeName(a.FheType), a.Err, a.Expected, a.Actual)
}

func (a Anomaly) Unwrap() error { return a.Err }

// Reporter receives anomalies. Implementations must be safe for concurrent
// use if the Encoder is shared.
type Reporter interface {
	Report(Anomaly)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Anomaly)

func (f ReporterFunc) Report(a Anomaly) { f(a) }

type nopReporter struct{}

func (nopReporter) Report(Anomaly) {}

// Logger is the part of log.Logger the reporter writes to.
type Logger interface {
	Debug(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

func (nopLogger) Error(string, ...interface{}) {}

// LogReporter writes anomalies to a logger. Length mismatches are logged at
// error level, dropped elements at debug level.
type LogReporter struct {
	log Logger
}

// NewLogReporter returns a reporter writing to logger, usually a log.Logger.
// A nil logger discards every entry.
func NewLogReporter(logger Logger) *LogReporter {
	if logger == nil {
		logger = nopLogger{}
	}
	return &LogReporter{log: logger}
}

func (r *LogReporter) Report(a Anomaly) {
	if errors.Is(a.Err, ErrUnrecognizedType) {
		r.log.Debug(
			"dropping plaintext with unknown type",
			zap.Int("index", a.Index),
			zap.Int32("fheType", a.FheType),
		)
		return
	}
	r.log.Error(
		"invalid plaintext length, substituting zero",
		zap.Int("index", a.Index),
		zap.String("fheType", typeName(a.FheType)),
		zap.Int("expected", a.Expected),
		zap.Int("actual", a.Actual),
		log.Err(a.Err),
	)
}

func typeName(v int32) string {
	t, err := fhetype.FromInt32(v)
	if err != nil {
		return fmt.Sprintf("FheType(%d)", v)
	}
	return t.String()
}
