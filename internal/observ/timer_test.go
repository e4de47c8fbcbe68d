package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerTotalsTopLevelPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("check")
	tm.Record("a.def", 3*time.Millisecond, "cached")
	tm.End(idx, "2 files")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(rep.Phases))
	}
	if rep.Phases[0].Nested || !rep.Phases[1].Nested {
		t.Fatalf("nesting wrong: %+v", rep.Phases)
	}
	if rep.Phases[1].DurationMS != 3 {
		t.Fatalf("recorded duration = %v, want 3", rep.Phases[1].DurationMS)
	}
	if rep.TotalMS != rep.Phases[0].DurationMS {
		t.Fatalf("total %v must equal the top-level phase %v", rep.TotalMS, rep.Phases[0].DurationMS)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.End(tm.Begin("collect"), "")
	tm.Record("x.def", time.Millisecond, "done")
	s := tm.Summary()
	for _, want := range []string{"timings:", "collect", "    x.def", "// done", "total"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(5, "ignored")
	if rep := tm.Report(); len(rep.Phases) != 0 {
		t.Fatalf("unexpected phases %+v", rep.Phases)
	}
}

func TestTimerConcurrentRecord(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Record("file", time.Duration(i), "")
		}()
	}
	wg.Wait()
	if got := len(tm.Report().Phases); got != 16 {
		t.Fatalf("phases = %d, want 16", got)
	}
}
