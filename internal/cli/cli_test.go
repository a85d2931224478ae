package cli

import (
	"io"
	"testing"
)

func TestRootCommandStructure(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "transversal" {
		t.Errorf("Use = %q, want transversal", root.Use)
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage should be set")
	}

	want := map[string]bool{
		"check":      false,
		"comb":       false,
		"tree":       false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVerdict(t *testing.T) {
	if verdict(true) != "1" || verdict(false) != "0" {
		t.Errorf("verdict = %q/%q, want 1/0", verdict(true), verdict(false))
	}
}

func TestNewRunnerNoCache(t *testing.T) {
	c := New(io.Discard, LogInfo)
	r, err := c.newRunner(true)
	if err != nil {
		t.Fatalf("newRunner: %v", err)
	}
	defer r.Close()
	if r.Cache == nil || r.Keyer == nil {
		t.Error("runner missing cache or keyer")
	}
}
