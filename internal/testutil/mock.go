package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/bracketlog/tools/log"
)

// MockLogger is a 'log.Logger' recording each call as (level, format, args).
type MockLogger struct {
	mock.Mock
}

// Log records the call, the variadic arguments are passed through as a single '[]any'.
func (m *MockLogger) Log(level log.Level, format string, args ...any) {
	m.Called(level, format, args)
}
