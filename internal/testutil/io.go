// Package testutil contains IO helpers shared by the package tests.
package testutil

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// ErrWriteFailed is returned by an ErrWriter once it starts failing.
var ErrWriteFailed = errors.New("write failed")

// ReadAll the data from the provided reader fatally terminating the current test in the event of a failure.
func ReadAll(t *testing.T, reader io.Reader) []byte {
	data, err := io.ReadAll(reader)
	require.NoError(t, err)

	return data
}

// ErrWriter records successful writes and fails every write after the first 'OK' calls.
type ErrWriter struct {
	OK     int
	Writes [][]byte
}

// Write records a copy of p, or returns ErrWriteFailed once OK writes have succeeded.
func (e *ErrWriter) Write(p []byte) (int, error) {
	if len(e.Writes) >= e.OK {
		return 0, ErrWriteFailed
	}

	e.Writes = append(e.Writes, append([]byte(nil), p...))

	return len(p), nil
}
