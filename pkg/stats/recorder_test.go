package stats

import (
	"sync"
	"testing"
)

func TestRecorderConcurrentAppends(t *testing.T) {
	rec := NewRecorder()
	const goroutines = 50
	const perGoroutine = 200

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				rec.Record(OpSubmit, 1.0)
			}
		}()
	}
	wg.Wait()

	if got := rec.Count(OpSubmit); got != goroutines*perGoroutine {
		t.Fatalf("count = %d, want %d (lost updates)", got, goroutines*perGoroutine)
	}
}

func TestRecorderSamplesReturnsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.Record(OpTop, 10)
	s := rec.Samples(OpTop)
	s[0] = 999
	if got := rec.Samples(OpTop)[0]; got != 10 {
		t.Fatalf("sample mutated through returned slice: %v", got)
	}
}

func TestRecorderTotal(t *testing.T) {
	rec := NewRecorder()
	rec.Record(OpSubmit, 1)
	rec.Record(OpTop, 2)
	rec.Record(OpRank, 3)
	rec.Record(OpRank, 4)
	if got := rec.Total(); got != 4 {
		t.Fatalf("total = %d, want 4", got)
	}
}
