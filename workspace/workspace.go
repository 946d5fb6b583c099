// Package workspace holds named graphs loaded from a YAML file:
//
//	graphs:
//	  A:
//	    directed: false
//	    matrix:
//	      - [0, 1, 1]
//	      - [1, 0, 1]
//	      - [1, 1, 0]
//
// Every graph is validated with algebra.Graph.Load; one invalid graph rejects
// the whole file. A Workspace keeps graphs ordered by name and satisfies
// expr.Env.
package workspace

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/katalvlaran/gralgebra/expr"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrBadName is returned for a graph name that is not an identifier.
	ErrBadName = errors.New("workspace: graph name must match [A-Za-z_][A-Za-z0-9_]*")

	// ErrDecode wraps YAML syntax and schema errors.
	ErrDecode = errors.New("workspace: cannot decode file")
)

var nameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// File is the on-disk layout.
type File struct {
	Graphs map[string]GraphDef `yaml:"graphs"`
}

// GraphDef describes one graph in a File.
type GraphDef struct {
	Directed bool    `yaml:"directed"`
	Matrix   [][]int `yaml:"matrix"`
}

// Workspace is a name-ordered set of graphs, safe for concurrent lookups.
// Graphs themselves are not locked; callers that mutate them in place
// (prefix ++/--, compound assignment) must serialize those evaluations.
type Workspace struct {
	mu   sync.RWMutex
	tree *redblacktree.Tree // string → *algebra.Graph
}

var _ expr.Env = (*Workspace)(nil)

// New returns an empty workspace.
func New() *Workspace {
	return &Workspace{tree: redblacktree.NewWithStringComparator()}
}

// Load reads and parses the file at path.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read workspace %s", path)
	}
	ws, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "workspace %s", path)
	}

	return ws, nil
}

// Parse decodes data. Unknown keys are rejected. Graphs are validated in name
// order so the reported failure is deterministic.
func Parse(data []byte) (*Workspace, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}

	defs := redblacktree.NewWithStringComparator()
	for name, def := range f.Graphs {
		defs.Put(name, def)
	}

	ws := New()
	it := defs.Iterator()
	for it.Next() {
		name := it.Key().(string)
		if !nameRE.MatchString(name) {
			return nil, errors.Wrapf(ErrBadName, "%q", name)
		}
		def := it.Value().(GraphDef)
		g, err := algebra.FromMatrix(def.Matrix, algebra.WithDirected(def.Directed))
		if err != nil {
			return nil, errors.WithMessagef(err, "graph %q", name)
		}
		ws.tree.Put(name, g)
	}

	return ws, nil
}

// Graph returns the graph bound to name.
func (w *Workspace) Graph(name string) (*algebra.Graph, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	v, ok := w.tree.Get(name)
	if !ok {
		return nil, false
	}

	return v.(*algebra.Graph), true
}

// SetGraph binds g to name, replacing any previous binding.
func (w *Workspace) SetGraph(name string, g *algebra.Graph) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tree.Put(name, g)
}

// Remove drops name; it reports whether it was bound.
func (w *Workspace) Remove(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.tree.Get(name); !ok {
		return false
	}
	w.tree.Remove(name)

	return true
}

// Len returns the number of graphs.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.tree.Size()
}

// Names returns the bound names in ascending order.
func (w *Workspace) Names() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	names := make([]string, 0, w.tree.Size())
	for _, k := range w.tree.Keys() {
		names = append(names, k.(string))
	}

	return names
}

// Each calls fn for every graph in name order. fn must not modify w.
func (w *Workspace) Each(fn func(name string, g *algebra.Graph)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	it := w.tree.Iterator()
	for it.Next() {
		fn(it.Key().(string), it.Value().(*algebra.Graph))
	}
}

// Marshal encodes the workspace in the File layout.
func (w *Workspace) Marshal() ([]byte, error) {
	f := File{Graphs: make(map[string]GraphDef, w.Len())}
	w.Each(func(name string, g *algebra.Graph) {
		f.Graphs[name] = GraphDef{Directed: g.Directed(), Matrix: g.Matrix()}
	})

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return nil, errors.Wrap(err, "encode workspace")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode workspace")
	}

	return buf.Bytes(), nil
}

// Save writes Marshal's output to path.
func (w *Workspace) Save(path string) error {
	data, err := w.Marshal()
	if err != nil {
		return err
	}

	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write workspace %s", path)
}
