package usecase

import (
	"context"

	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/knowledge"
	"hardware-ai-orchestrator/internal/metrics"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock retriever for testing
type mockRetriever struct {
	out knowledge.Context
	err error
}

func (m *mockRetriever) Retrieve(ctx context.Context, intent, domain, text string) (knowledge.Context, error) {
	return m.out, m.err
}

func newTestUseCase(retriever knowledge.Retriever) *implUseCase {
	store, err := catalog.NewStore(catalog.Default())
	if err != nil {
		panic(err)
	}
	tracker, err := metrics.NewAccuracyTracker(64)
	if err != nil {
		panic(err)
	}
	return New(&mockLogger{}, store, retriever, metrics.NewExporter(), tracker)
}
