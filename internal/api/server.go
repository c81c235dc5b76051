// Package api exposes the search engine and method drivers over a small
// JSON HTTP API, for callers that would rather POST an Input document
// than shell out to the CLI. Grounded on the teacher's internal/web
// server: a gorilla/mux router with one handler per route, logging
// through the standard logger at the boundary.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/declanmills/cube/internal/cube"
	"github.com/declanmills/cube/internal/input"
	"github.com/declanmills/cube/internal/method"
	"github.com/declanmills/cube/internal/search"
)

// Server wires the routes below onto a *mux.Router. Fields are
// exported-free; construct with NewServer.
type Server struct {
	router *mux.Router
	db     *cube.AlgorithmDB
	log    logrus.FieldLogger
}

func NewServer(db *cube.AlgorithmDB, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.New()
	}
	s := &Server{router: mux.NewRouter(), db: db, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) Start(addr string) error {
	s.log.WithField("addr", addr).Info("api server starting")
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) Router() http.Handler { return s.router }

type solveRequest struct {
	Input     string `json:"input"`
	Method    string `json:"method"` // "cfop", "roux", or "" for generic
	MaxDepth  int    `json:"max_depth"`
	N         int    `json:"n"`
	Faces     string `json:"faces"`
	Wide      string `json:"wide"`
	Slices    string `json:"slices"`
	Rotations string `json:"rotations"`
}

type solveResponse struct {
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
	Solutions []apiOps  `json:"solutions,omitempty"`
	Solution  *apiOps   `json:"solution,omitempty"`
}

type apiOps struct {
	Algorithm string `json:"algorithm"`
	Length    int    `json:"length"`
}

// handleSolve decodes a solveRequest, parses its Input document, and runs
// either a method driver (method = "cfop"/"roux") or the generic search,
// mirroring solve's CLI behavior as a JSON endpoint.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResponse{OK: false, Error: err.Error()})
		return
	}

	parsed, err := input.Parse(req.Input, s.db)
	if err != nil {
		writeJSON(w, http.StatusOK, solveResponse{OK: false, Error: err.Error()})
		return
	}
	if _, ok := cube.ValidateBalance(parsed.Init, parsed.Goal); !ok {
		writeJSON(w, http.StatusOK, solveResponse{OK: false, Error: cube.ErrColorBalance.Error()})
		return
	}

	cfg := search.Config{Log: s.log}

	switch req.Method {
	case "cfop":
		ops, err := method.Drive(parsed.Init, method.LayerByLayer(s.db), cfg)
		respondDriver(w, ops, err)
		return
	case "roux":
		ops, err := method.Drive(parsed.Init, method.Block(), cfg)
		respondDriver(w, ops, err)
		return
	}

	allowed := alphabetFrom(req.Faces, req.Wide, req.Slices, req.Rotations)
	if len(allowed) == 0 {
		writeJSON(w, http.StatusOK, solveResponse{OK: false, Error: cube.ErrNoMovesSpecified.Error()})
		return
	}
	maxDepth := req.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 9
	}
	n := req.N
	if n <= 0 {
		n = 1
	}
	solutions := search.Search(parsed.Init, parsed.Goal, allowed, maxDepth, n, cfg)
	if len(solutions) == 0 {
		writeJSON(w, http.StatusOK, solveResponse{OK: false, Error: "search exhausted: no solution found within the given depth"})
		return
	}
	out := make([]apiOps, len(solutions))
	for i, o := range solutions {
		out[i] = apiOps{Algorithm: o.String(), Length: o.Weight()}
	}
	writeJSON(w, http.StatusOK, solveResponse{OK: true, Solutions: out})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondDriver(w http.ResponseWriter, ops cube.Ops, err error) {
	if err != nil {
		writeJSON(w, http.StatusOK, solveResponse{OK: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, solveResponse{OK: true, Solution: &apiOps{Algorithm: ops.String(), Length: ops.Weight()}})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func alphabetFrom(faces, wide, slices, rotations string) []cube.Move {
	var out []cube.Move
	for _, r := range faces {
		if f, ok := faceLetter(byte(r)); ok {
			out = append(out, cube.FaceMove(f, true), cube.FaceMove(f, false))
		}
	}
	for _, r := range wide {
		if f, ok := faceLetter(byte(r)); ok {
			out = append(out, cube.WideMove(f, true), cube.WideMove(f, false))
		}
	}
	for _, r := range slices {
		if sl, ok := sliceLetter(byte(r)); ok {
			out = append(out, cube.SliceMove(sl, true), cube.SliceMove(sl, false))
		}
	}
	for _, r := range rotations {
		if a, ok := axisLetter(byte(r)); ok {
			out = append(out, cube.RotationMove(a, true), cube.RotationMove(a, false))
		}
	}
	return out
}

func faceLetter(b byte) (cube.FaceName, bool) {
	switch b {
	case 'U', 'u':
		return cube.FaceUp, true
	case 'D', 'd':
		return cube.FaceDown, true
	case 'F', 'f':
		return cube.FaceFront, true
	case 'B', 'b':
		return cube.FaceBack, true
	case 'L', 'l':
		return cube.FaceLeft, true
	case 'R', 'r':
		return cube.FaceRight, true
	default:
		return 0, false
	}
}

func sliceLetter(b byte) (cube.SliceName, bool) {
	switch b {
	case 'M', 'm':
		return cube.Middle, true
	case 'E', 'e':
		return cube.Equator, true
	case 'S', 's':
		return cube.Standing, true
	default:
		return 0, false
	}
}

func axisLetter(b byte) (cube.RotationAxis, bool) {
	switch b {
	case 'x', 'X':
		return cube.AxisX, true
	case 'y', 'Y':
		return cube.AxisY, true
	case 'z', 'Z':
		return cube.AxisZ, true
	default:
		return 0, false
	}
}
