package core

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"io"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var expvarSeq atomic.Uint64

type operationTally struct {
	totalMS  float64
	outcomes map[string]int64
}

// ExpvarMetricsRecorder keeps per-operation latency totals and outcome counts
// in process memory and exposes them under one expvar key.
type ExpvarMetricsRecorder struct {
	name string

	mu  sync.Mutex
	ops map[string]*operationTally
}

// ExpvarMetricsSnapshot is a detached copy of the recorder state.
type ExpvarMetricsSnapshot struct {
	DurationsMS map[string]float64          `json:"durations_ms_total"`
	Results     map[string]map[string]int64 `json:"results_total"`
	RecordedAt  time.Time                   `json:"recorded_at"`
}

// NewExpvarMetricsRecorder publishes a recorder under name, or under
// cleancore_service_metrics_<n> when name is empty.
func NewExpvarMetricsRecorder(name string) *ExpvarMetricsRecorder {
	if name == "" {
		name = fmt.Sprintf("cleancore_service_metrics_%d", expvarSeq.Add(1))
	}
	rec := &ExpvarMetricsRecorder{name: name, ops: make(map[string]*operationTally)}
	expvar.Publish(name, expvar.Func(func() any { return rec.Snapshot() }))
	return rec
}

// Name is the expvar key.
func (r *ExpvarMetricsRecorder) Name() string {
	return r.name
}

// Snapshot copies the current totals.
func (r *ExpvarMetricsRecorder) Snapshot() ExpvarMetricsSnapshot {
	snap := ExpvarMetricsSnapshot{RecordedAt: time.Now().UTC()}

	r.mu.Lock()
	defer r.mu.Unlock()
	snap.DurationsMS = make(map[string]float64, len(r.ops))
	snap.Results = make(map[string]map[string]int64, len(r.ops))
	for op, tally := range r.ops {
		snap.DurationsMS[op] = tally.totalMS
		snap.Results[op] = maps.Clone(tally.outcomes)
	}
	return snap
}

// WriteTo encodes the current snapshot as indented JSON.
func (r *ExpvarMetricsRecorder) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(r.Snapshot(), "", "  ")
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(data, '\n'))
	return int64(n), err
}

// Observe implements MetricsRecorder. Unnamed operations are dropped.
func (r *ExpvarMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	tally, ok := r.ops[operation]
	if !ok {
		tally = &operationTally{outcomes: make(map[string]int64, 2)}
		r.ops[operation] = tally
	}
	tally.totalMS += float64(duration) / float64(time.Millisecond)
	tally.outcomes[statusLabel(success)]++
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// JSONTraceEntry is one finished span.
type JSONTraceEntry struct {
	SpanID     string    `json:"span_id"`
	Operation  string    `json:"operation"`
	Status     string    `json:"status"`
	DurationMS float64   `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}

// JSONTraceTracer emits one JSON line per finished span and keeps every span
// in memory.
type JSONTraceTracer struct {
	mu    sync.Mutex
	spans []JSONTraceEntry
	out   *json.Encoder
}

// NewJSONTracer writes spans to w. A nil writer only retains them.
func NewJSONTracer(w io.Writer) *JSONTraceTracer {
	t := &JSONTraceTracer{}
	if w != nil {
		t.out = json.NewEncoder(w)
	}
	return t
}

// Entries returns the finished spans in completion order.
func (t *JSONTraceTracer) Entries() []JSONTraceEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]JSONTraceEntry(nil), t.spans...)
}

// Start implements Tracer.
func (t *JSONTraceTracer) Start(ctx context.Context, operation string) (context.Context, TraceSpan) {
	return ctx, &jsonTraceSpan{
		tracer: t,
		entry: JSONTraceEntry{
			SpanID:    uuid.NewString(),
			Operation: operation,
			StartedAt: time.Now().UTC(),
		},
	}
}

type jsonTraceSpan struct {
	tracer *JSONTraceTracer
	entry  JSONTraceEntry
}

func (s *jsonTraceSpan) End(err error) {
	entry := s.entry
	entry.EndedAt = time.Now().UTC()
	entry.DurationMS = float64(entry.EndedAt.Sub(entry.StartedAt)) / float64(time.Millisecond)
	entry.Status = statusLabel(err == nil)
	if err != nil {
		entry.Error = err.Error()
	}
	s.tracer.record(entry)
}

func (t *JSONTraceTracer) record(entry JSONTraceEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.spans = append(t.spans, entry)
	if t.out != nil {
		// Tracing never fails the traced operation.
		_ = t.out.Encode(entry)
	}
}
