// internal/httpserver/auth.go
//
// Admin authentication for mutating endpoints.
// A single admin principal logs in with a password checked against a
// bcrypt hash from the environment; a short-lived HS256 JWT then gates
// POST /openings/recompute.
//
// Environment variables:
//   ADMIN_PASSWORD_HASH  bcrypt hash of the admin password (login is
//                        disabled when unset)
//   JWT_SECRET           HS256 signing secret
//   JWT_EXPIRES_HOURS    token lifetime (default 12)

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// mountAuthRoutes registers /auth/login and the gated admin routes.
func (s *Server) mountAuthRoutes() {
	s.r.Post("/auth/login", s.handleLogin)
	s.r.With(s.requireAuth()).Post("/openings/recompute", s.handleRecompute)
}

// loginReq is the payload for POST /auth/login.
type loginReq struct {
	Password string `json:"password"`
}

// handleLogin verifies the admin password and issues a JWT.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		http.Error(w, `{"error":"admin_login_disabled"}`, http.StatusForbidden)
		return
	}
	var body loginReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(body.Password)) != nil {
		http.Error(w, `{"error":"invalid_password"}`, http.StatusUnauthorized)
		return
	}
	tok, exp, err := signJWT()
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"token": tok, "expiresAt": exp.UTC().Format(time.RFC3339)})
}

// signJWT creates an HS256 token for the admin principal with a
// configurable expiry (JWT_EXPIRES_HOURS; default 12).
func signJWT() (string, time.Time, error) {
	secret := getEnv("JWT_SECRET", "dev_secret_change_me")
	hours := 12
	if v := os.Getenv("JWT_EXPIRES_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			hours = n
		}
	}
	exp := time.Now().Add(time.Duration(hours) * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// requireAuth enforces a valid admin JWT on the wrapped routes.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(getEnv("JWT_SECRET", "dev_secret_change_me")), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			if sub, _ := claims["sub"].(string); sub != "admin" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
