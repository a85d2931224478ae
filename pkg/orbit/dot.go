package orbit

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// TreeTrace is a Trace that records the search as a tree for later
// export. Install it with Checker.SetTrace before running a trial, then
// export with ToDOT or RenderSVG.
//
// A TreeTrace holds one tree at a time; running another trial with the
// same trace replaces the recorded tree with the latest trial's.
type TreeTrace struct {
	root  *treeNode
	stack []*treeNode

	// pending branch info, consumed by the next Enter
	pendingPoint int
	pendingLabel int
}

type treeNode struct {
	newPoint int
	viaPoint int // forced point placed by the parent to reach this node
	viaLabel int // part label the parent tried; 0 at the root
	forced   []int
	result   bool
	reason   Reason
	children []*treeNode
}

// NewTreeTrace creates an empty search-tree recorder.
func NewTreeTrace() *TreeTrace {
	return &TreeTrace{}
}

// Enter implements Trace.
func (t *TreeTrace) Enter(newPoint int) {
	node := &treeNode{
		newPoint: newPoint,
		viaPoint: t.pendingPoint,
		viaLabel: t.pendingLabel,
	}
	t.pendingPoint, t.pendingLabel = 0, 0
	if len(t.stack) == 0 {
		t.root = node
	} else {
		parent := t.stack[len(t.stack)-1]
		parent.children = append(parent.children, node)
	}
	t.stack = append(t.stack, node)
}

// Forced implements Trace.
func (t *TreeTrace) Forced(p int) {
	node := t.stack[len(t.stack)-1]
	node.forced = append(node.forced, p)
}

// Branch implements Trace.
func (t *TreeTrace) Branch(r, label int) {
	t.pendingPoint, t.pendingLabel = r, label
}

// Leave implements Trace.
func (t *TreeTrace) Leave(result bool, reason Reason) {
	node := t.stack[len(t.stack)-1]
	node.result = result
	node.reason = reason
	t.stack = t.stack[:len(t.stack)-1]
}

// NodeCount returns the number of recorded Check calls.
func (t *TreeTrace) NodeCount() int {
	return countNodes(t.root)
}

func countNodes(n *treeNode) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.children {
		count += countNodes(c)
	}
	return count
}

// Result returns the outcome of the recorded trial's root call. It is
// only meaningful after a completed Check run.
func (t *TreeTrace) Result() bool {
	return t.root != nil && t.root.result
}

// ToDOT returns a Graphviz DOT representation of the recorded search
// tree.
//
// Each node is one Check call, labeled with its newly-placed point, the
// points it forced, and the reason it returned. Successful calls are
// filled green, failed calls red. Edges are labeled with the placement
// the parent tried (forced point and part label).
func (t *TreeTrace) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph SearchTree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled, shape=box];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=10];\n\n")

	if t.root != nil {
		t.writeDOTNode(&buf, t.root, 0)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func (t *TreeTrace) writeDOTNode(buf *bytes.Buffer, n *treeNode, id int) int {
	nodeID := fmt.Sprintf("n%d", id)
	next := id + 1

	fill := "\"#fadbd8\""
	if n.result {
		fill = "\"#d5f5e3\""
	}
	label := fmt.Sprintf("new: %d", n.newPoint)
	if len(n.forced) > 0 {
		label += fmt.Sprintf("\\nforced: %v", n.forced)
	}
	label += fmt.Sprintf("\\n%s", n.reason)
	fmt.Fprintf(buf, "  %s [label=\"%s\", fillcolor=%s];\n", nodeID, label, fill)

	for _, c := range n.children {
		fmt.Fprintf(buf, "  %s -> n%d [label=\"%d in P%d\"];\n", nodeID, next, c.viaPoint, c.viaLabel)
		next = t.writeDOTNode(buf, c, next)
	}
	return next
}

// RenderSVG renders the recorded search tree as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz
// to render it. The returned bytes are a complete SVG document. Errors
// are wrapped with context and suitable for errors.Is/errors.Unwrap.
func (t *TreeTrace) RenderSVG() ([]byte, error) {
	dot := t.ToDOT()

	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(context.Background(), g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
