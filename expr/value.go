package expr

import (
	"strconv"
	"sync"

	"github.com/katalvlaran/gralgebra/algebra"
)

// Kind tags the dynamic type of a Value.
type Kind int

const (
	KindGraph Kind = iota
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "graph"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the result of an expression. Only the field selected by Kind is set.
// A graph value may alias a graph bound in the Env; treat it as read-only.
type Value struct {
	Kind  Kind
	Graph *algebra.Graph
	Int   int
	Bool  bool
}

func graphValue(g *algebra.Graph) Value { return Value{Kind: KindGraph, Graph: g} }
func intValue(i int) Value              { return Value{Kind: KindInt, Int: i} }
func boolValue(b bool) Value            { return Value{Kind: KindBool, Bool: b} }

// String renders graphs with algebra.Render and scalars in Go syntax.
func (v Value) String() string {
	switch v.Kind {
	case KindGraph:
		return algebra.Render(v.Graph)
	case KindInt:
		return strconv.Itoa(v.Int)
	default:
		return strconv.FormatBool(v.Bool)
	}
}

// Env resolves and binds graph names.
type Env interface {
	Graph(name string) (*algebra.Graph, bool)
	SetGraph(name string, g *algebra.Graph)
}

// MapEnv is an Env backed by a map, safe for concurrent Graph/SetGraph calls.
type MapEnv struct {
	mu     sync.RWMutex
	graphs map[string]*algebra.Graph
}

// NewMapEnv returns an Env holding graphs; the map is copied.
func NewMapEnv(graphs map[string]*algebra.Graph) *MapEnv {
	m := &MapEnv{graphs: make(map[string]*algebra.Graph, len(graphs))}
	for name, g := range graphs {
		m.graphs[name] = g
	}

	return m
}

func (m *MapEnv) Graph(name string) (*algebra.Graph, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.graphs[name]

	return g, ok
}

func (m *MapEnv) SetGraph(name string, g *algebra.Graph) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.graphs[name] = g
}
