package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/playably/arcade/internal/dependencies/mocks"
	"github.com/playably/arcade/internal/model"
	"github.com/playably/arcade/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	Memory    *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	app := newWithDependencies(store, model.DefaultRules(), mockClock, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Memory:    store,
	}
}
