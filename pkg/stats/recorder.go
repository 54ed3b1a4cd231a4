package stats

import "sync"

// Operation tags a latency sample with the request kind that produced it.
type Operation string

const (
	OpSubmit Operation = "submit"
	OpTop    Operation = "top"
	OpRank   Operation = "rank"
)

// Operations lists the known kinds in report order.
var Operations = []Operation{OpSubmit, OpTop, OpRank}

// Recorder accumulates latency samples per operation for the lifetime of
// the process. Samples are append-only; the mutex makes concurrent appends
// from worker goroutines safe without lost updates.
type Recorder struct {
	mu      sync.Mutex
	samples map[Operation][]float64
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{samples: make(map[Operation][]float64)}
}

// Record appends one latency sample for op, in milliseconds.
func (r *Recorder) Record(op Operation, ms float64) {
	r.mu.Lock()
	r.samples[op] = append(r.samples[op], ms)
	r.mu.Unlock()
}

// Samples returns a copy of the samples recorded for op.
func (r *Recorder) Samples(op Operation) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.samples[op]))
	copy(out, r.samples[op])
	return out
}

// Count returns the number of samples recorded for op.
func (r *Recorder) Count(op Operation) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples[op])
}

// Total returns the number of samples recorded across all operations.
func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.samples {
		n += len(s)
	}
	return n
}
