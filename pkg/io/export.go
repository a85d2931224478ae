package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/grouptools/transversal/pkg/errors"
	"github.com/grouptools/transversal/pkg/protocol"
)

type document struct {
	N         int     `json:"n"`
	K         int     `json:"k"`
	CosetReps [][]int `json:"coset_reps"`
	Adjacency []int   `json:"adjacency"`
	Trials    [][]int `json:"trials,omitempty"`
}

// WriteJSON encodes a problem as a JSON document and writes it to w.
// The output includes the trial list and can be re-imported with
// [ReadJSON] for round-trip processing.
func WriteJSON(p *protocol.Problem, w io.Writer) error {
	doc := document{
		N:         p.N,
		K:         p.K,
		CosetReps: make([][]int, 0, p.N),
		Adjacency: p.Adjacency.Ints(),
	}
	for point := 1; point <= p.N && point < len(p.CosetReps); point++ {
		doc.CosetReps = append(doc.CosetReps, p.CosetReps[point].Ints())
	}
	for _, rep := range p.Trials {
		doc.Trials = append(doc.Trials, rep.Ints())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode problem document")
	}
	return nil
}

// ExportJSON writes a problem to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(p *protocol.Problem, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(p, f)
}
