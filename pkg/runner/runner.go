// Package runner executes trial streams against an orbit with caching.
//
// This package implements the read → check → report loop shared by the
// CLI and the HTTP API. By centralizing this logic, we ensure consistent
// behavior across all entry points and avoid code duplication.
//
// # Usage
//
// Create a Runner and execute a trial stream:
//
//	runner := runner.NewRunner(cache, nil, logger)
//	result, err := runner.Run(ctx, problem, source, runner.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Answer)
package runner

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/grouptools/transversal/pkg/cache"
	"github.com/grouptools/transversal/pkg/errors"
	"github.com/grouptools/transversal/pkg/observability"
	"github.com/grouptools/transversal/pkg/orbit"
	"github.com/grouptools/transversal/pkg/protocol"
)

// Options configures a run.
type Options struct {
	// ProblemText is the canonical input text, when the caller has it
	// in full (file input, HTTP body). Non-empty text enables result
	// memoization; streaming callers leave it empty and skip the cache.
	ProblemText []byte

	// Refresh bypasses the cache read but still stores the fresh
	// answer.
	Refresh bool

	// Trace receives search events for every trial. Tracing disables
	// the cache so the tree is always built.
	Trace orbit.Trace
}

// Result contains the outputs of a run.
type Result struct {
	// RunID identifies this run in logs and API responses.
	RunID string `json:"run_id"`

	// Answer is the verdict of the last trial executed. The runner
	// stops at the first failing trial, so this is true exactly when
	// every trial in the stream holds.
	Answer bool `json:"answer"`

	// Trials is the number of trials executed.
	Trials int `json:"trials"`

	// CacheHit reports whether the answer came from the cache.
	CacheHit bool `json:"cache_hit"`

	// Stats contains timing information.
	Stats Stats `json:"stats"`
}

// Stats contains run timing information.
type Stats struct {
	CheckTime time.Duration `json:"check_time"`
}

// cachedResult is the payload memoized per problem hash.
type cachedResult struct {
	Answer bool `json:"answer"`
	Trials int  `json:"trials"`
}

// Runner executes trial streams with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Run executes every trial from the source against the problem's orbit,
// stopping at the first trial that fails. The returned Result.Answer
// matches the verdict the textual protocol would print.
func (r *Runner) Run(ctx context.Context, problem *protocol.Problem, trials protocol.TrialSource, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.NewString()}

	cacheKey := ""
	if len(opts.ProblemText) > 0 && opts.Trace == nil {
		cacheKey = r.Keyer.ResultKey(cache.Hash(opts.ProblemText))
	}

	if cacheKey != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached cachedResult
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "result")
				result.Answer = cached.Answer
				result.Trials = cached.Trials
				result.CacheHit = true
				result.Stats.CheckTime = time.Since(start)
				r.Logger.Debug("answer from cache", "run_id", result.RunID, "answer", result.Answer)
				observability.Checker().OnRunComplete(ctx, result.Trials, result.Answer, true, result.Stats.CheckTime, nil)
				return result, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	o, err := problem.Orbit()
	if err != nil {
		return nil, err
	}
	checker := orbit.NewChecker(o)
	if opts.Trace != nil {
		checker.SetTrace(opts.Trace)
	}

	result.Answer = true
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "run canceled")
		}

		rep, ok, err := trials.NextTrial()
		if err != nil {
			observability.Checker().OnRunComplete(ctx, result.Trials, false, false, time.Since(start), err)
			return nil, err
		}
		if !ok {
			break
		}

		result.Trials++
		observability.Checker().OnTrialStart(ctx, result.Trials)

		a, forced, newPoint, err := o.NewTrial(rep)
		if err != nil {
			observability.Checker().OnRunComplete(ctx, result.Trials, false, false, time.Since(start), err)
			return nil, err
		}

		trialStart := time.Now()
		answer := checker.Check(a, forced, newPoint)
		trialTime := time.Since(trialStart)

		nodes := 0
		if tt, ok := opts.Trace.(*orbit.TreeTrace); ok && tt != nil {
			nodes = tt.NodeCount()
		}
		observability.Checker().OnTrialComplete(ctx, result.Trials, answer, nodes, trialTime)
		r.Logger.Debug("trial checked",
			"run_id", result.RunID,
			"trial", result.Trials,
			"rep", rep.String(),
			"answer", answer,
			"duration", trialTime)

		if !answer {
			result.Answer = false
			break
		}
	}
	result.Stats.CheckTime = time.Since(start)

	if cacheKey != "" {
		if data, err := json.Marshal(cachedResult{Answer: result.Answer, Trials: result.Trials}); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLResult); err == nil {
				observability.Cache().OnCacheSet(ctx, "result", len(data))
			}
		}
	}

	r.Logger.Info("run complete",
		"run_id", result.RunID,
		"trials", result.Trials,
		"answer", result.Answer,
		"duration", result.Stats.CheckTime)
	observability.Checker().OnRunComplete(ctx, result.Trials, result.Answer, false, result.Stats.CheckTime, nil)

	return result, nil
}

// RunBytes parses a complete problem text and runs its trial stream,
// memoizing the answer keyed by the text's hash.
func (r *Runner) RunBytes(ctx context.Context, text []byte, opts Options) (*Result, error) {
	reader := protocol.NewBytesReader(text)
	problem, err := reader.ReadProblem()
	if err != nil {
		return nil, err
	}
	opts.ProblemText = text
	return r.Run(ctx, problem, reader, opts)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
