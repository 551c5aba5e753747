package mocks

import (
	"context"
	"shareit/infras/otel"
	"sync"
)

// Recorder is an otel.Otel that opens no spans and remembers span names and traced errors.
type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.spans = append(r.spans, spanName)
	r.mu.Unlock()

	return ctx, &scope{recorder: r}
}

func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recorder) record(err error) {
	r.mu.Lock()
	r.errors = append(r.errors, err)
	r.mu.Unlock()
}

type scope struct {
	recorder *Recorder
}

func (s *scope) End() {}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}

func (s *scope) TraceError(err error) {
	if err != nil {
		s.recorder.record(err)
	}
}

func (s *scope) TraceIfError(err error) {
	s.TraceError(err)
}
