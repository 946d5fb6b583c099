// Package server exposes a workspace over HTTP:
//
//	POST /v1/eval           evaluate statements in order
//	GET  /v1/graphs         list graphs by name
//	GET  /v1/graphs/{name}  one graph with its matrix
//	GET  /healthz           liveness
//	GET  /metrics           Prometheus
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/katalvlaran/gralgebra/expr"
	"github.com/katalvlaran/gralgebra/internal/metrics"
	"github.com/katalvlaran/gralgebra/workspace"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxStatements = 64

// Source yields the workspace to serve; *workspace.Loader satisfies it.
type Source interface {
	Workspace() *workspace.Workspace
}

// Static serves a fixed workspace.
type Static struct{ WS *workspace.Workspace }

func (s Static) Workspace() *workspace.Workspace { return s.WS }

// Server holds the HTTP routes. Statements may mutate bound graphs in place,
// so evaluations hold graphMu exclusively and graph reads hold it shared.
type Server struct {
	router  *mux.Router
	source  Source
	format  []algebra.FormatOption
	graphMu sync.RWMutex
}

// New registers all routes. placeholder is the token for absent edges in
// rendered output.
func New(source Source, placeholder string) *Server {
	s := &Server{
		router: mux.NewRouter(),
		source: source,
		format: []algebra.FormatOption{algebra.WithPlaceholder(placeholder)},
	}
	s.router.HandleFunc("/v1/eval", s.handleEval).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/graphs", s.handleGraphs).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/graphs/{name}", s.handleGraph).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router.Use(loggingMiddleware)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// POST /v1/eval: statements run in order against the live workspace; the
// first failure stops the batch with 422.
func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if len(req.Statements) == 0 {
		writeError(w, http.StatusBadRequest, "statements must not be empty")
		return
	}
	if len(req.Statements) > maxStatements {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%d statements exceeds max %d", len(req.Statements), maxStatements))
		return
	}

	id := uuid.New().String()
	start := time.Now()
	ws := s.source.Workspace()

	s.graphMu.Lock()
	defer s.graphMu.Unlock()

	results := make([]evalResult, 0, len(req.Statements))
	for i, src := range req.Statements {
		v, err := expr.Eval(ws, src)
		if err != nil {
			metrics.StatementsEvaluated.WithLabelValues("error").Inc()
			klog.V(1).Infof("eval %s: statement %d %q: %v", id, i, src, err)
			idx := i
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), ID: id, Statement: &idx})
			return
		}
		metrics.StatementsEvaluated.WithLabelValues(v.Kind.String()).Inc()
		results = append(results, s.result(src, v))
	}
	metrics.EvaluationDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)
	metrics.WorkspaceGraphs.Set(float64(ws.Len()))

	writeJSON(w, http.StatusOK, evalResponse{ID: id, Results: results})
}

func (s *Server) result(src string, v expr.Value) evalResult {
	res := evalResult{Statement: src, Kind: v.Kind.String()}
	switch v.Kind {
	case expr.KindGraph:
		res.Summary = algebra.Summary(v.Graph)
		res.Matrix = v.Graph.Matrix()
		res.Rendered = algebra.Render(v.Graph, s.format...)
	case expr.KindInt:
		n := v.Int
		res.Int = &n
		res.Rendered = v.String()
	case expr.KindBool:
		b := v.Bool
		res.Bool = &b
		res.Rendered = v.String()
	}

	return res
}

// GET /v1/graphs
func (s *Server) handleGraphs(w http.ResponseWriter, r *http.Request) {
	ws := s.source.Workspace()

	s.graphMu.RLock()
	infos := make([]graphInfo, 0, ws.Len())
	ws.Each(func(name string, g *algebra.Graph) {
		infos = append(infos, graphInfo{
			Name:     name,
			Directed: g.Directed(),
			Vertices: g.VertexCount(),
			Edges:    g.EdgeCount(),
			Summary:  algebra.Summary(g),
		})
	})
	s.graphMu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{"graphs": infos})
}

// GET /v1/graphs/{name}
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s.graphMu.RLock()
	g, ok := s.source.Workspace().Graph(name)
	var info graphInfo
	if ok {
		info = graphInfo{
			Name:     name,
			Directed: g.Directed(),
			Vertices: g.VertexCount(),
			Edges:    g.EdgeCount(),
			Summary:  algebra.Summary(g),
			Matrix:   g.Matrix(),
			Rendered: algebra.Render(g, s.format...),
		}
	}
	s.graphMu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown graph %q", name))
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// GET /healthz always answers 200.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
