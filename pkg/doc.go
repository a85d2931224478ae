// Package pkg provides the core libraries for the transversal checker.
//
// # Overview
//
// Transversal decides a universal property over a transitive permutation
// group's orbit of k-subsets: must every completion of a given partial
// ordered partition of the point set contain an orbit member as a
// transversal? The pkg directory splits into three areas:
//
//  1. Core domain logic (sequences, subset tables, the orbit checker)
//  2. Input and output (wire protocol, JSON documents)
//  3. Infrastructure (caching, errors, observability, the HTTP server)
//
// # Architecture
//
// The typical data flow:
//
//	Orbit description (text protocol or JSON document)
//	         ↓
//	    [protocol] / [io] (parse and validate)
//	         ↓
//	    [orbit] (coset tables, trial seeding, recursive check)
//	         ↓
//	    [runner] (trial loop, memoization, hooks)
//	         ↓
//	    1/0 verdict, search-tree DOT/SVG, HTTP response
//
// # Quick Start
//
// Parse a problem and run its trials:
//
//	import (
//	    "context"
//	    "github.com/grouptools/transversal/pkg/protocol"
//	    "github.com/grouptools/transversal/pkg/runner"
//	)
//
//	reader := protocol.NewReader(os.Stdin)
//	problem, _ := reader.ReadProblem()
//	r := runner.NewRunner(nil, nil, nil)
//	result, _ := r.Run(context.Background(), problem, reader, runner.Options{})
//	fmt.Println(result.Answer)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [intseq] - Length-tagged 1-based integer sequences, the currency of
// every table in the checker, plus the whitespace-separated scanner the
// wire protocol is built on.
//
// [combin] - Binomial coefficients and the lexicographic table of
// k-subsets that adjacency lists index into.
//
// [orbit] - The heart of the module: orbit tables built from coset
// representatives, partial-partition trials, and the recursive
// branch-and-bound Check. A Trace hook records the search as a tree for
// DOT/SVG export.
//
// ## Input and Output
//
// [protocol] - The textual wire protocol (dimensions, coset table,
// adjacency, lazily-streamed trials).
//
// [io] - JSON problem documents for tool integration, round-trippable
// with the protocol types.
//
// ## Infrastructure
//
// [cache] - Result memoization keyed by problem-text hash. FileCache
// for the CLI, RedisCache for server deployments, NullCache to disable.
//
// [runner] - The trial loop shared by CLI and server: streams trials,
// stops at the first failure, memoizes answers, emits hooks.
//
// [server] - The HTTP API (POST /v1/check, GET /healthz) on chi.
//
// [errors] - Structured errors with machine-readable codes, shared by
// the parsers, the CLI, and the HTTP error mapping.
//
// [observability] - Hook interfaces with no-op defaults for metrics and
// tracing backends.
//
// [buildinfo] - ldflags-injected version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/orbit/...    # Specific package
//
// [intseq]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/intseq
// [combin]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/combin
// [orbit]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/orbit
// [protocol]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/protocol
// [io]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/io
// [cache]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/cache
// [runner]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/runner
// [server]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/server
// [errors]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/errors
// [observability]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/grouptools/transversal/pkg/buildinfo
package pkg
