package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/howietz/placeshare/internal/application"
	"github.com/howietz/placeshare/internal/domain/entity"
	"github.com/howietz/placeshare/internal/infrastructure/geocode"
	"github.com/howietz/placeshare/internal/infrastructure/memory"
	handlers "github.com/howietz/placeshare/internal/interface/http"
	"github.com/howietz/placeshare/internal/router"
	"github.com/howietz/placeshare/internal/router/modules"
	"github.com/howietz/placeshare/pkg/response"
	"github.com/howietz/placeshare/pkg/validation"
)

type envelope struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		User   *entity.User    `json:"user"`
		Users  []*entity.User  `json:"users"`
		Place  *entity.Place   `json:"place"`
		Places []*entity.Place `json:"places"`
	} `json:"data"`
	Error map[string]string `json:"error"`
}

func newTestRouter(store *memory.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		response.Error[any](c, http.StatusNotFound, "Could not find this route.", nil)
	})

	userSvc := application.NewUserService(store.Users(), nil)
	placeSvc := application.NewPlaceService(store.Places(), store, geocode.Static{}, nil)

	reg := router.NewRegistry(r)
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, nil), nil))
	reg.Add(modules.NewPlaceModule(handlers.NewPlaceHandler(placeSvc, nil)))
	reg.RegisterAll()
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func signup(t *testing.T, r *gin.Engine, name, email, password string) *entity.User {
	t.Helper()
	code, env := doJSON(t, r, http.MethodPost, "/api/users/signup", gin.H{
		"name": name, "email": email, "password": password,
	})
	if code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d (%s)", code, env.Message)
	}
	if env.Data.User == nil || env.Data.User.ID == "" {
		t.Fatal("signup: expected a user with generated id")
	}
	return env.Data.User
}

func TestSignupLoginFlow(t *testing.T) {
	r := newTestRouter(memory.NewStore())

	signup(t, r, "howie", "howie@g.com", "secret1")

	// duplicate signup with different casing conflicts
	code, env := doJSON(t, r, http.MethodPost, "/api/users/signup", gin.H{
		"name": "howie", "email": "Howie@G.com", "password": "secret1",
	})
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate signup: expected 422, got %d", code)
	}
	if env.Message != "Could not create user, email already exists" {
		t.Fatalf("unexpected message %q", env.Message)
	}

	// wrong password
	code, env = doJSON(t, r, http.MethodPost, "/api/users/login", gin.H{
		"email": "howie@g.com", "password": "not-it",
	})
	if code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", code)
	}
	unknownCode, unknownEnv := doJSON(t, r, http.MethodPost, "/api/users/login", gin.H{
		"email": "nobody@g.com", "password": "secret1",
	})
	if unknownCode != http.StatusUnauthorized || unknownEnv.Message != env.Message {
		t.Fatalf("unknown email must look like a wrong password: %d %q vs %q", unknownCode, unknownEnv.Message, env.Message)
	}

	// correct credentials
	code, env = doJSON(t, r, http.MethodPost, "/api/users/login", gin.H{
		"email": "howie@g.com", "password": "secret1",
	})
	if code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", code)
	}
	if env.Data.User == nil || env.Data.User.Email != "howie@g.com" {
		t.Fatalf("login: unexpected user payload: %+v", env.Data.User)
	}
}

func TestSignupValidation(t *testing.T) {
	r := newTestRouter(memory.NewStore())

	cases := []struct {
		name string
		body gin.H
		want string // field expected in error details
	}{
		{"missing name", gin.H{"email": "a@b.com", "password": "secret1"}, "name"},
		{"bad email", gin.H{"name": "a", "email": "not-an-email", "password": "secret1"}, "email"},
		{"short password", gin.H{"name": "a", "email": "a@b.com", "password": "12345"}, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := doJSON(t, r, http.MethodPost, "/api/users/signup", tc.body)
			if code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", code)
			}
			if _, ok := env.Error[tc.want]; !ok {
				t.Fatalf("expected error detail for %q, got %v", tc.want, env.Error)
			}
		})
	}
}

func TestListUsersExcludesPasswords(t *testing.T) {
	r := newTestRouter(memory.NewStore())
	signup(t, r, "howie", "howie@g.com", "secret1")

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("secret1")) {
		t.Fatal("password leaked in users listing")
	}
}

func TestPlaceLifecycle(t *testing.T) {
	r := newTestRouter(memory.NewStore())
	u := signup(t, r, "howie", "howie@g.com", "secret1")

	code, env := doJSON(t, r, http.MethodPost, "/api/places", gin.H{
		"title":       "Eiffel Tower",
		"description": "A landmark in Paris",
		"address":     "Champ de Mars, Paris",
		"creator":     u.ID,
	})
	if code != http.StatusCreated {
		t.Fatalf("create place: expected 201, got %d (%s)", code, env.Message)
	}
	p := env.Data.Place
	if p == nil || p.ID == "" {
		t.Fatal("expected a place with generated id")
	}
	if p.Creator != u.ID {
		t.Fatalf("expected creator %q, got %q", u.ID, p.Creator)
	}
	if p.Coordinates.Lat != 40.7484474 || p.Coordinates.Lon != -73.9871516 {
		t.Fatalf("expected stub coordinates, got %+v", p.Coordinates)
	}

	// place shows up under its creator
	code, env = doJSON(t, r, http.MethodGet, "/api/places/user/"+u.ID, nil)
	if code != http.StatusOK {
		t.Fatalf("list by creator: expected 200, got %d", code)
	}
	if len(env.Data.Places) != 1 || env.Data.Places[0].ID != p.ID {
		t.Fatalf("unexpected creator listing: %+v", env.Data.Places)
	}

	// update title and description
	code, env = doJSON(t, r, http.MethodPatch, "/api/places/"+p.ID, gin.H{
		"title":       "Tour Eiffel",
		"description": "Wrought-iron lattice tower",
	})
	if code != http.StatusOK {
		t.Fatalf("update place: expected 200, got %d (%s)", code, env.Message)
	}
	if env.Data.Place.Title != "Tour Eiffel" {
		t.Fatalf("expected updated title, got %q", env.Data.Place.Title)
	}

	// delete and verify it is gone from both sides
	code, env = doJSON(t, r, http.MethodDelete, "/api/places/"+p.ID, nil)
	if code != http.StatusOK {
		t.Fatalf("delete place: expected 200, got %d", code)
	}
	if env.Message != "Deleted place." {
		t.Fatalf("unexpected delete message %q", env.Message)
	}
	code, _ = doJSON(t, r, http.MethodGet, "/api/places/"+p.ID, nil)
	if code != http.StatusNotFound {
		t.Fatalf("get deleted place: expected 404, got %d", code)
	}
	code, _ = doJSON(t, r, http.MethodGet, "/api/places/user/"+u.ID, nil)
	if code != http.StatusNotFound {
		t.Fatalf("creator listing after delete: expected 404, got %d", code)
	}
}

func TestCreatePlaceValidation(t *testing.T) {
	r := newTestRouter(memory.NewStore())
	u := signup(t, r, "howie", "howie@g.com", "secret1")

	code, env := doJSON(t, r, http.MethodPost, "/api/places", gin.H{
		"title":       "Eiffel Tower",
		"description": "tiny", // shorter than 5
		"address":     "Champ de Mars, Paris",
		"creator":     u.ID,
	})
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if _, ok := env.Error["description"]; !ok {
		t.Fatalf("expected description error detail, got %v", env.Error)
	}
}

func TestUpdatePlaceValidation(t *testing.T) {
	r := newTestRouter(memory.NewStore())
	u := signup(t, r, "howie", "howie@g.com", "secret1")
	code, env := doJSON(t, r, http.MethodPost, "/api/places", gin.H{
		"title":       "Eiffel Tower",
		"description": "A landmark in Paris",
		"address":     "Champ de Mars, Paris",
		"creator":     u.ID,
	})
	if code != http.StatusCreated {
		t.Fatalf("create place: expected 201, got %d", code)
	}

	code, env = doJSON(t, r, http.MethodPatch, "/api/places/"+env.Data.Place.ID, gin.H{
		"title":       "Eiffel Tower",
		"description": "tiny",
	})
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if _, ok := env.Error["description"]; !ok {
		t.Fatalf("expected description error detail, got %v", env.Error)
	}
}

func TestCreatePlaceUnknownCreator(t *testing.T) {
	r := newTestRouter(memory.NewStore())

	code, env := doJSON(t, r, http.MethodPost, "/api/places", gin.H{
		"title":       "Eiffel Tower",
		"description": "A landmark in Paris",
		"address":     "Champ de Mars, Paris",
		"creator":     "no-such-user",
	})
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if env.Message != "Could not find user for provided id" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestGetMissingPlace(t *testing.T) {
	r := newTestRouter(memory.NewStore())

	code, _ := doJSON(t, r, http.MethodGet, "/api/places/missing", nil)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestUnknownRouteFallback(t *testing.T) {
	r := newTestRouter(memory.NewStore())

	code, env := doJSON(t, r, http.MethodGet, "/api/nope", nil)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if env.Message != "Could not find this route." {
		t.Fatalf("unexpected message %q", env.Message)
	}
}
