package runner

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/grouptools/transversal/pkg/cache"
	"github.com/grouptools/transversal/pkg/intseq"
	"github.com/grouptools/transversal/pkg/orbit"
	"github.com/grouptools/transversal/pkg/protocol"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// cycleProblem builds the C_n problem whose orbit is the set of cycle
// edges: adjacency {2, n}.
func cycleProblem(n int) *protocol.Problem {
	reps := make([]intseq.Seq, n+1)
	for p := 1; p <= n; p++ {
		rep := intseq.New(n)
		for i := 1; i <= n; i++ {
			rep.Set(i, (i+p-2)%n+1)
		}
		reps[p] = rep
	}
	return &protocol.Problem{N: n, K: 2, CosetReps: reps, Adjacency: intseq.Of(2, n)}
}

// The cycle-edge problem for C6, in wire form. Every bipartition with
// both sides nonempty cuts an edge, so both trials hold.
const cycleText = `6 2
6 1 2 3 4 5 6
6 2 3 4 5 6 1
6 3 4 5 6 1 2
6 4 5 6 1 2 3
6 5 6 1 2 3 4
6 6 1 2 3 4 5
2 2 6
1 1
1 3
0
`

// The diameter problem for C6 (orbit {1,4},{2,5},{3,6}): the guarantee
// fails for the first trial already.
const diameterText = `6 2
6 1 2 3 4 5 6
6 2 3 4 5 6 1
6 3 4 5 6 1 2
6 4 5 6 1 2 3
6 5 6 1 2 3 4
6 6 1 2 3 4 5
1 4
1 1
1 2
0
`

func TestRunAllTrialsHold(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	defer r.Close()

	p := cycleProblem(6)
	trials := protocol.Trials([]intseq.Seq{intseq.Of(1), intseq.Of(3)})

	result, err := r.Run(context.Background(), p, trials, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Answer {
		t.Error("Answer = false, want true")
	}
	if result.Trials != 2 {
		t.Errorf("Trials = %d, want 2", result.Trials)
	}
	if result.CacheHit {
		t.Error("CacheHit = true without problem text")
	}
	if result.RunID == "" {
		t.Error("RunID is empty")
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	defer r.Close()

	p := cycleProblem(6)
	p.Adjacency = intseq.Of(4) // diameters: every trial fails

	trials := protocol.Trials([]intseq.Seq{intseq.Of(1), intseq.Of(2), intseq.Of(3)})
	result, err := r.Run(context.Background(), p, trials, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Answer {
		t.Error("Answer = true, want false")
	}
	if result.Trials != 1 {
		t.Errorf("Trials = %d, want 1 (stop at first failure)", result.Trials)
	}
}

func TestRunInvalidTrial(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	defer r.Close()

	p := cycleProblem(6)
	trials := protocol.Trials([]intseq.Seq{intseq.Of(1, 1)}) // repeated point

	if _, err := r.Run(context.Background(), p, trials, Options{}); err == nil {
		t.Error("Run = nil error for invalid trial")
	}
}

func TestRunCanceledContext(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := cycleProblem(6)
	trials := protocol.Trials([]intseq.Seq{intseq.Of(1)})
	if _, err := r.Run(ctx, p, trials, Options{}); err == nil {
		t.Error("Run = nil error for canceled context")
	}
}

func TestRunBytesMemoizes(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, quietLogger())
	defer r.Close()

	first, err := r.RunBytes(ctx, []byte(cycleText), Options{})
	if err != nil {
		t.Fatalf("RunBytes: %v", err)
	}
	if !first.Answer || first.CacheHit {
		t.Fatalf("first run = (answer %v, hit %v), want (true, false)", first.Answer, first.CacheHit)
	}

	second, err := r.RunBytes(ctx, []byte(cycleText), Options{})
	if err != nil {
		t.Fatalf("RunBytes: %v", err)
	}
	if !second.CacheHit {
		t.Error("second run should hit the cache")
	}
	if second.Answer != first.Answer || second.Trials != first.Trials {
		t.Errorf("cached result = (%v, %d), want (%v, %d)",
			second.Answer, second.Trials, first.Answer, first.Trials)
	}
}

func TestRunBytesRefreshBypassesCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, quietLogger())
	defer r.Close()

	if _, err := r.RunBytes(ctx, []byte(diameterText), Options{}); err != nil {
		t.Fatalf("RunBytes: %v", err)
	}
	result, err := r.RunBytes(ctx, []byte(diameterText), Options{Refresh: true})
	if err != nil {
		t.Fatalf("RunBytes: %v", err)
	}
	if result.CacheHit {
		t.Error("Refresh run should not hit the cache")
	}
	if result.Answer {
		t.Error("Answer = true, want false for the diameter orbit")
	}
}

func TestRunBytesMalformed(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	defer r.Close()

	if _, err := r.RunBytes(context.Background(), []byte("4 1\n"), Options{}); err == nil {
		t.Error("RunBytes = nil error for invalid dimensions")
	}
}

func TestRunWithTraceSkipsCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, quietLogger())
	defer r.Close()

	// Warm the cache, then run the same text with a trace: the search
	// must execute so the tree gets built.
	if _, err := r.RunBytes(ctx, []byte(cycleText), Options{}); err != nil {
		t.Fatalf("RunBytes: %v", err)
	}

	trace := orbit.NewTreeTrace()
	result, err := r.RunBytes(ctx, []byte(cycleText), Options{Trace: trace})
	if err != nil {
		t.Fatalf("RunBytes: %v", err)
	}
	if result.CacheHit {
		t.Error("traced run must not answer from cache")
	}
	if trace.NodeCount() == 0 {
		t.Error("trace recorded no nodes")
	}
}
