//go:build e2e

package e2e_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	goodKey      = "GOODKEY"
	diffyToken   = "tok1"
	githubToken  = "gh-token"
	circleToken  = "circle-token"
	githubLogin  = "alice"
	failingSite  = "brokensite"
	failingVar   = "DIFFY_PROJECT_ID"
	logFilePerms = 0o600
)

var projectPages = map[string][]map[string]any{
	"0": {{"id": 7, "name": "alpha"}},
	"1": {{"id": "42", "name": "demo"}},
}

var projectNames = map[string]string{
	"7":  "alpha",
	"42": "demo",
}

// fakeAPI serves the Diffy, GitHub and CircleCI endpoints the plugin calls.
// Every accepted CircleCI variable is appended to logPath.
type fakeAPI struct {
	*httptest.Server
	logPath string
	mu      sync.Mutex
}

func newFakeAPI(logPath string) *fakeAPI {
	api := &fakeAPI{logPath: logPath}

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)

	r.Route("/diffy", func(r chi.Router) {
		r.Post("/auth/key", api.authKey)
		r.Group(func(r chi.Router) {
			r.Use(requireHeader("Authorization", "Bearer "+diffyToken))
			r.Get("/projects", api.listProjects)
			r.Get("/projects/{id}", api.getProject)
		})
	})

	r.With(requireHeader("Authorization", "token "+githubToken)).
		Get("/github/user", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"login": githubLogin})
		})

	r.Post("/circleci/project/gh/{login}/{site}/envvar", api.setEnvVar)

	api.Server = httptest.NewServer(r)
	return api
}

func requireHeader(name, want string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(name) != want {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *fakeAPI) authKey(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Key != goodKey {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "invalid key"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": diffyToken})
}

func (a *fakeAPI) listProjects(w http.ResponseWriter, r *http.Request) {
	projects := projectPages[r.URL.Query().Get("page")]
	if projects == nil {
		projects = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

func (a *fakeAPI) getProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	name, ok := projectNames[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "name": name})
}

func (a *fakeAPI) setEnvVar(w http.ResponseWriter, r *http.Request) {
	user, _, ok := r.BasicAuth()
	if !ok || user != circleToken {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "unauthorized"})
		return
	}

	var body struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
		return
	}

	login := chi.URLParam(r, "login")
	site := chi.URLParam(r, "site")
	if site == failingSite && body.Name == failingVar {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "boom"})
		return
	}

	if err := a.record(fmt.Sprintf("%s/%s %s=%s\n", login, site, body.Name, body.Value)); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, body)
}

func (a *fakeAPI) record(line string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.OpenFile(a.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerms)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
