package handler

import (
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/2bndy5/mk-pass/internal/crypto"
	"github.com/2bndy5/mk-pass/internal/middleware"
	"github.com/2bndy5/mk-pass/internal/model"
	"github.com/2bndy5/mk-pass/internal/repository"
	"github.com/2bndy5/mk-pass/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (chi.Router, *crypto.TokenIssuer) {
	gen := service.NewGeneratorService(rand.Reader, service.Limits{MaxLength: 128, MaxCount: 5})
	genHandler := NewGeneratorHandler(gen)

	tokens := crypto.NewTokenIssuer("test-secret", time.Hour)
	profiles := NewProfileHandler(service.NewProfileService(repository.NewProfileRepository(nil), gen))

	r := chi.NewRouter()
	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Post("/api/v1/validate", genHandler.HandleValidate)
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(tokens))
		r.Post("/api/v1/profiles", profiles.HandleCreateProfile)
		r.Delete("/api/v1/profiles/{profile_id}", profiles.HandleDeleteProfile)
	})
	return r, tokens
}

func do(t *testing.T, h http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate(t *testing.T) {
	r, _ := newTestRouter()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCount  int
		wantLength int
	}{
		{"empty body uses defaults", "", http.StatusOK, 1, 16},
		{"empty object uses defaults", "{}", http.StatusOK, 1, 16},
		{"custom requirements", `{"length":24,"numbers":4,"specials":2,"count":3}`, http.StatusOK, 3, 24},
		{"repeats allowed", `{"length":20,"numbers":18,"specials":0,"allow_repeats":true}`, http.StatusOK, 1, 20},
		{"unvalidated raw request", `{"length":5,"numbers":4,"specials":4,"raw":true}`, http.StatusBadRequest, 0, 0},
		{"raw numbers near max int", `{"raw":true,"allow_repeats":true,"numbers":9223372036854775807,"specials":1}`, http.StatusBadRequest, 0, 0},
		{"raw specials near max int", `{"raw":true,"allow_repeats":true,"numbers":1,"specials":9223372036854775807}`, http.StatusBadRequest, 0, 0},
		{"alphabet exhausted", `{"length":100}`, http.StatusBadRequest, 0, 0},
		{"too long", `{"length":500,"allow_repeats":true}`, http.StatusBadRequest, 0, 0},
		{"too many", `{"count":6}`, http.StatusBadRequest, 0, 0},
		{"malformed json", `{"length":`, http.StatusBadRequest, 0, 0},
		{"wrong type", `{"length":"long"}`, http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodPost, "/api/v1/generate", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantStatus != http.StatusOK {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.NotEmpty(t, body["error"])
				return
			}

			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			var resp model.GenerateResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.Len(t, resp.Passwords, tt.wantCount)
			for _, p := range resp.Passwords {
				assert.Len(t, p, tt.wantLength)
				assert.True(t, crypto.ClassOf(p[0]).IsLetter(), "password %q does not start with a letter", p)
			}
		})
	}
}

func TestHandleGenerateBodyTooLarge(t *testing.T) {
	r, _ := newTestRouter()
	body := `{"length":16,"pad":"` + strings.Repeat("x", maxBodyBytes) + `"}`

	rec := do(t, r, http.MethodPost, "/api/v1/generate", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleValidate(t *testing.T) {
	r, _ := newTestRouter()

	rec := do(t, r, http.MethodPost, "/api/v1/validate", `{"length":16,"numbers":15,"specials":15}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ValidateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, model.Requirements{Length: 16, Numbers: 13, Specials: 1, FirstIsLetter: true}, resp.Requirements)
	assert.True(t, resp.Clamped)
}

func TestProfileRoutes(t *testing.T) {
	r, tokens := newTestRouter()
	token, err := tokens.Issue(1)
	require.NoError(t, err)
	auth := []string{"Authorization", "Bearer " + token}

	t.Run("requires auth", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/v1/profiles", `{"name":"x"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects invalid profile", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/v1/profiles", `{"length":16}`, auth...)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects missing body", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/v1/profiles", "", auth...)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed profile id", func(t *testing.T) {
		rec := do(t, r, http.MethodDelete, "/api/v1/profiles/not-a-uuid", "", auth...)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
