package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

// LoggerTestSuite tests the log package
type LoggerTestSuite struct {
	suite.Suite
	originalLogger zerolog.Logger
	testOutput     *bytes.Buffer
}

// SetupTest runs before each test
func (s *LoggerTestSuite) SetupTest() {
	// Save the original logger
	s.originalLogger = Logger

	// Create a test output buffer
	s.testOutput = &bytes.Buffer{}

	// Configure a test logger that writes to our buffer
	Logger = zerolog.New(s.testOutput).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

// TearDownTest runs after each test
func (s *LoggerTestSuite) TearDownTest() {
	// Restore the original logger
	Logger = s.originalLogger
}

// TestInfoLogging tests info level logging
func (s *LoggerTestSuite) TestInfoLogging() {
	Info().Str("key", "value").Msg("info message")

	output := s.testOutput.String()
	s.Contains(output, "info message")
	s.Contains(output, "value")
	s.Contains(output, `"level":"info"`)
}

// TestErrorLogging tests error level logging
func (s *LoggerTestSuite) TestErrorLogging() {
	Error().Msg("error message")

	output := s.testOutput.String()
	s.Contains(output, "error message")
	s.Contains(output, `"level":"error"`)
}

// TestWarnLogging tests warn level logging
func (s *LoggerTestSuite) TestWarnLogging() {
	Warn().Msg("warn message")

	s.Contains(s.testOutput.String(), `"level":"warn"`)
}

// TestDebugLogging tests debug level logging
func (s *LoggerTestSuite) TestDebugLogging() {
	Debug().Msg("debug message")

	s.Contains(s.testOutput.String(), "debug message")
}

// TestStructuredFields tests that structured fields are emitted as JSON
func (s *LoggerTestSuite) TestStructuredFields() {
	Info().Str("bucket", "phrases").Int("count", 3).Msg("loaded")

	output := s.testOutput.String()
	s.Contains(output, `"bucket":"phrases"`)
	s.Contains(output, `"count":3`)
	s.True(strings.HasSuffix(strings.TrimSpace(output), "}"))
}

// TestSetDebugMode tests switching the global level
func (s *LoggerTestSuite) TestSetDebugMode() {
	SetDebugMode()
	s.Equal(zerolog.DebugLevel, Logger.GetLevel())
}

// TestLoggerTestSuite runs the test suite
func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
