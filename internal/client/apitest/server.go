// Package apitest runs an in-memory stand-in for the activities API so the
// client packages can be tested end to end over real HTTP.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/google/uuid"
)

const sessionCookie = "session"

// Activity is the wire shape of one catalog record.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Server serves /auth/* and /activities/* from memory. Activities are listed
// in insertion order.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	order      []string
	activities map[string]*Activity
	teachers   map[string]string
	sessions   map[string]string
	requests   []string
}

// NewServer starts a server with the given teacher credentials.
func NewServer(teachers map[string]string) *Server {
	s := &Server{
		activities: make(map[string]*Activity),
		teachers:   teachers,
		sessions:   make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/status", s.authStatus)
	mux.HandleFunc("POST /auth/login", s.login)
	mux.HandleFunc("POST /auth/logout", s.logout)
	mux.HandleFunc("GET /activities", s.list)
	mux.HandleFunc("POST /activities/{name}/signup", s.signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", s.unregister)

	s.Server = httptest.NewServer(s.record(mux))
	return s
}

// Add appends an activity to the catalog.
func (s *Server) Add(name string, a Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[name]; !ok {
		s.order = append(s.order, name)
	}
	if a.Participants == nil {
		a.Participants = []string{}
	}
	s.activities[name] = &a
}

// Participants returns a copy of an activity's roster.
func (s *Server) Participants(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.activities[name]
	if !ok {
		return nil
	}
	return append([]string(nil), a.Participants...)
}

// Requests lists "METHOD path" for every request served so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) user(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name, ok := s.sessions[c.Value]
	return name, ok
}

func (s *Server) authStatus(w http.ResponseWriter, r *http.Request) {
	name, ok := s.user(r)
	body := map[string]any{"authenticated": ok, "username": nil}
	if ok {
		body["username"] = name
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{"loc": []string{"body"}, "msg": "Invalid JSON body", "type": "value_error"}},
		})
		return
	}
	if want, ok := s.teachers[req.Username]; !ok || want != req.Password {
		writeDetail(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = req.Username
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: token, Path: "/", HttpOnly: true})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged in as " + req.Username})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.mu.Lock()
		delete(s.sessions, c.Value)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Hand-built so the object keys keep insertion order.
	buf := []byte{'{'}
	for i, name := range s.order {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, _ := json.Marshal(name)
		v, _ := json.Marshal(s.activities[name])
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	buf = append(buf, '}')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(a *Activity, name, email string) (int, map[string]string) {
		for _, p := range a.Participants {
			if p == email {
				return http.StatusBadRequest, map[string]string{"detail": "Student is already signed up"}
			}
		}
		a.Participants = append(a.Participants, email)
		return http.StatusOK, map[string]string{"message": "Signed up " + email + " for " + name}
	})
}

func (s *Server) unregister(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(a *Activity, name, email string) (int, map[string]string) {
		for i, p := range a.Participants {
			if p == email {
				a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
				return http.StatusOK, map[string]string{"message": "Unregistered " + email + " from " + name}
			}
		}
		return http.StatusBadRequest, map[string]string{"detail": "Student is not signed up for this activity"}
	})
}

func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(a *Activity, name, email string) (int, map[string]string)) {
	if _, ok := s.user(r); !ok {
		writeDetail(w, http.StatusForbidden, "Teacher login required")
		return
	}
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	s.mu.Lock()
	a, ok := s.activities[name]
	if !ok {
		s.mu.Unlock()
		writeDetail(w, http.StatusNotFound, "Activity not found")
		return
	}
	status, body := fn(a, name, email)
	s.mu.Unlock()

	writeJSON(w, status, body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
