// internal/httpserver/server.go
//
// HTTP wiring for the solver API.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON content type, CORS).
//   - Public endpoints: "/", "/health", "/openings", "/debug/words".
//   - Session endpoints: POST /session/new, POST /session/guess.
//   - Admin endpoints (JWT-gated, see auth.go): POST /openings/recompute.
//
// Notes:
//   - Sessions live in the injected store; the solver engine itself is
//     stateless and lock-free.
//   - The served openings list is replaced wholesale on recompute, so it
//     is guarded by an RWMutex; scoring never takes that lock.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/pl9ed/wordle-solver/internal/opencache"
	"github.com/pl9ed/wordle-solver/internal/session"
	"github.com/pl9ed/wordle-solver/internal/solver"
	"github.com/pl9ed/wordle-solver/internal/store"
	"github.com/pl9ed/wordle-solver/internal/words"
)

// openingCount is how many ranked openers the service maintains.
const openingCount = 5

// Server bundles router, session store, opening cache, and the currently
// served opening list.
type Server struct {
	r     *chi.Mux
	store store.Store
	cache *opencache.Store // may be nil: recompute then runs uncached

	mu       sync.RWMutex // guards openings
	openings []solver.Opening
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cache *opencache.Store, openings []solver.Opening) *Server {
	s := &Server{r: chi.NewRouter(), store: st, cache: cache, openings: openings}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(60 * time.Second)) // bound handler time (recompute scans the full bank)
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/openings","POST /session/new","POST /session/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"count":       words.Count(),
			"fingerprint": words.Fingerprint(),
		})
	})

	// Openings + sessions
	s.r.Get("/openings", s.handleOpenings)
	s.r.Post("/session/new", s.handleNewSession)
	s.r.Post("/session/guess", s.handleGuess)

	// Admin (JWT-gated)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- OPENINGS ------------------------------------

// handleOpenings returns the currently served ranked opening list.
func (s *Server) handleOpenings(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	out := append([]solver.Opening{}, s.openings...)
	s.mu.RUnlock()
	_ = json.NewEncoder(w).Encode(map[string]any{"openings": out})
}

// handleRecompute reruns the opening precomputation against the loaded
// bank and swaps in the result. Registered behind requireAuth.
func (s *Server) handleRecompute(w http.ResponseWriter, r *http.Request) {
	list, err := solver.TopOpenings(words.All(), openingCount, nil)
	if err != nil {
		log.Error().Err(err).Msg("recompute openings")
		http.Error(w, `{"error":"recompute_failed"}`, http.StatusInternalServerError)
		return
	}
	if s.cache != nil {
		if err := s.cache.Save(r.Context(), words.Fingerprint(), list); err != nil {
			log.Warn().Err(err).Msg("persist recomputed openings")
		}
	}

	s.mu.Lock()
	s.openings = list
	s.mu.Unlock()

	_ = json.NewEncoder(w).Encode(map[string]any{"openings": list})
}

// ----------------------------- SESSIONS ------------------------------------

// newSessionRes is the payload for POST /session/new.
type newSessionRes struct {
	SessionID  string          `json:"sessionId"`
	Candidates int             `json:"candidates"`
	Opening    *solver.Opening `json:"opening,omitempty"` // best known opener, if any
}

// handleNewSession creates a session over the full bank.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New(words.All())
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	res := newSessionRes{SessionID: sess.ID, Candidates: sess.Remaining()}
	s.mu.RLock()
	if len(s.openings) > 0 {
		o := s.openings[0]
		res.Opening = &o
	}
	s.mu.RUnlock()
	_ = json.NewEncoder(w).Encode(res)
}

// guessReq/Res payloads for POST /session/guess.
type guessReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
	Feedback  string `json:"feedback"` // G/Y/X per position, e.g. "GGYXX"
}
type guessRes struct {
	Remaining      int                    `json:"remaining"`
	State          string                 `json:"state"`                    // "solving" | "solved" | "no_candidates"
	Candidates     []string               `json:"candidates"`               // up to 5, pool order
	Recommendation *solver.Recommendation `json:"recommendation,omitempty"` // present while solving
}

// handleGuess applies one guess/feedback pair and, while the session is
// still open, computes the next recommendation.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	pattern, err := solver.ParsePattern(req.Feedback)
	if err != nil {
		http.Error(w, `{"error":"bad_feedback"}`, http.StatusBadRequest)
		return
	}

	remaining, state, err := sess.Apply(req.Guess, pattern)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	res := guessRes{
		Remaining:  remaining,
		State:      state,
		Candidates: topCandidates(sess.Candidates(), 5),
	}
	if state == session.StateSolving {
		rec, err := sess.Recommend()
		if err != nil {
			log.Error().Err(err).Str("sessionId", sess.ID).Msg("recommend")
			http.Error(w, `{"error":"recommend_failed"}`, http.StatusInternalServerError)
			return
		}
		res.Recommendation = &rec
	}
	_ = json.NewEncoder(w).Encode(res)
}

// topCandidates returns at most n candidates in pool order.
func topCandidates(pool []string, n int) []string {
	if len(pool) < n {
		n = len(pool)
	}
	return append([]string{}, pool[:n]...)
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
