package server

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope. ID and Statement are set for
// evaluation failures.
type errorResponse struct {
	Error     string `json:"error"`
	ID        string `json:"id,omitempty"`
	Statement *int   `json:"statement,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

type evalRequest struct {
	Statements []string `json:"statements"`
}

type evalResponse struct {
	ID      string       `json:"id"`
	Results []evalResult `json:"results"`
}

// evalResult carries exactly one of Matrix, Int or Bool, chosen by Kind.
type evalResult struct {
	Statement string  `json:"statement"`
	Kind      string  `json:"kind"`
	Summary   string  `json:"summary,omitempty"`
	Matrix    [][]int `json:"matrix,omitempty"`
	Int       *int    `json:"int,omitempty"`
	Bool      *bool   `json:"bool,omitempty"`
	Rendered  string  `json:"rendered"`
}

type graphInfo struct {
	Name     string  `json:"name"`
	Directed bool    `json:"directed"`
	Vertices int     `json:"vertices"`
	Edges    int     `json:"edges"`
	Summary  string  `json:"summary"`
	Matrix   [][]int `json:"matrix,omitempty"`
	Rendered string  `json:"rendered,omitempty"`
}
