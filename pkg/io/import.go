package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/grouptools/transversal/pkg/errors"
	"github.com/grouptools/transversal/pkg/intseq"
	"github.com/grouptools/transversal/pkg/protocol"
)

// ReadJSON decodes a JSON problem document from r.
//
// The input must be a JSON object with "n", "k", "coset_reps" and
// "adjacency" fields; "trials" is optional. See the package
// documentation for the full format.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - The dimensions are out of range (2 <= k <= n)
//   - The coset table does not hold exactly n lists of n images each
//
// Deeper orbit validation (image ranges, adjacency indices) is left to
// Problem.Orbit, so a document that fails there still decodes.
//
// The returned problem is independent of r and can be modified safely
// after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*protocol.Problem, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode problem document")
	}

	if err := errors.ValidateDimensions(doc.N, doc.K); err != nil {
		return nil, err
	}
	if len(doc.CosetReps) != doc.N {
		return nil, errors.New(errors.ErrCodeInvalidProblem,
			"coset table has %d entries, want %d", len(doc.CosetReps), doc.N)
	}

	cosetReps := make([]intseq.Seq, doc.N+1)
	for i, images := range doc.CosetReps {
		if len(images) != doc.N {
			return nil, errors.New(errors.ErrCodeInvalidProblem,
				"coset representative %d has %d images, want %d", i+1, len(images), doc.N)
		}
		cosetReps[i+1] = intseq.Of(images...)
	}

	trials := make([]intseq.Seq, len(doc.Trials))
	for i, rep := range doc.Trials {
		trials[i] = intseq.Of(rep...)
	}

	return &protocol.Problem{
		N:         doc.N,
		K:         doc.K,
		CosetReps: cosetReps,
		Adjacency: intseq.Of(doc.Adjacency...),
		Trials:    trials,
	}, nil
}

// ImportJSON reads a JSON problem file at path.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*protocol.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
