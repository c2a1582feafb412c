package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-scheduler/internal/security"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memStore) Put(_ context.Context, key, _ string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = body
	return nil
}

func (m *memStore) SignedURL(_ context.Context, key string) (string, error) {
	return "https://storage.test/" + key + "?token=abc", nil
}

type client struct {
	t     *testing.T
	r     *gin.Engine
	token string
}

func newClient(t *testing.T) *client {
	t.Helper()
	db := dbtest.Open(t)

	r := gin.New()
	require.NoError(t, RegisterRoutes(r, Deps{
		DB:        db,
		Tokens:    security.NewTokenService("test-secret", time.Hour),
		Store:     &memStore{objects: map[string][]byte{}},
		AuditLogs: audit.New(db),
	}))
	return &client{t: t, r: r}
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	return w
}

func (c *client) upload(path string, names ...string) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := mw.CreateFormFile("file", name)
		require.NoError(c.t, err)
		if name == "notes.txt" {
			_, err = part.Write([]byte("plain text"))
		} else {
			err = png.Encode(part, image.NewRGBA(image.Rect(0, 0, 2, 2)))
		}
		require.NoError(c.t, err)
	}
	require.NoError(c.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// signUp registers a user, logs in and returns its id.
func (c *client) signUp(email string) string {
	c.t.Helper()

	w := c.do(http.MethodPost, "/api/user", map[string]any{
		"user_name":  "Ana",
		"user_email": email,
		"password":   "secret123",
	})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	id := decode(c.t, w)["id"].(string)

	w = c.do(http.MethodPost, "/api/auth/login", map[string]any{
		"user_email": email,
		"password":   "secret123",
	})
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())
	c.token = decode(c.t, w)["accessToken"].(string)
	return id
}

func TestHealthIsPublic(t *testing.T) {
	c := newClient(t)
	w := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/api/me", "/api/user", "/api/branchs", "/api/clients/paginate", "/api/audit-logs"} {
		w := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLoginFailure(t *testing.T) {
	c := newClient(t)
	c.signUp("ana@salon.com")

	w := c.do(http.MethodPost, "/api/auth/login", map[string]any{"user_email": "ana@salon.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Email or password invalid", decode(t, w)["message"])
}

func TestUserEndpoints(t *testing.T) {
	c := newClient(t)
	id := c.signUp("ana@salon.com")

	w := c.do(http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decode(t, w)["id"])
	assert.NotContains(t, w.Body.String(), "password")

	w = c.do(http.MethodGet, "/api/user/email/ana@salon.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPost, "/api/user", map[string]any{"user_name": "Dup", "user_email": "ana@salon.com", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodPut, "/api/user/"+id, map[string]any{"password": "another1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "current_password is required when password is provided", decode(t, w)["message"])

	w = c.do(http.MethodPut, "/api/user/"+id, map[string]any{"user_name": "Ana Maria"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Ana Maria", body["user_name"])
	assert.Equal(t, "ana@salon.com", body["user_email"])

	w = c.do(http.MethodGet, "/api/user/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found!", decode(t, w)["message"])
}

func TestBranchFlow(t *testing.T) {
	c := newClient(t)
	userID := c.signUp("owner@salon.com")

	w := c.do(http.MethodPost, "/api/services", map[string]any{
		"service_name": "Corte", "service_value": 3500, "expected_time": "00:40", "user_id": userID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	serviceID := decode(t, w)["id"].(string)

	branch := map[string]any{
		"branch_name": "Centro", "street": "Rua A", "cep": "01001000", "city": "São Paulo",
		"district": "Sé", "local_number": "12", "opening_hours": "25:00", "closing_hours": "18:00",
		"user_id": userID, "services": []string{serviceID},
	}

	w = c.do(http.MethodPost, "/api/branchs", branch)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Format hour 25:00 invalid", decode(t, w)["message"])

	branch["opening_hours"] = "08:00"
	branch["user_id"] = "2c1d8f3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f"
	w = c.do(http.MethodPost, "/api/branchs", branch)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found!", decode(t, w)["message"])

	branch["user_id"] = userID
	w = c.do(http.MethodPost, "/api/branchs", branch)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	branchID := created["id"].(string)
	assert.Len(t, created["services"], 1)

	w = c.do(http.MethodGet, "/api/branchs/paginate?page=1&limit=10&city=Paulo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.Len(t, page["items"], 1)
	assert.EqualValues(t, 1, page["meta"].(map[string]any)["totalItems"])

	w = c.do(http.MethodPost, "/api/clients", map[string]any{
		"client_name": "Maria", "first_name": "Maria", "birth_date": "1990-01-01", "branch_id": branchID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	customer := decode(t, w)
	assert.Equal(t, true, customer["is_active"])

	w = c.do(http.MethodDelete, "/api/clients/"+customer["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"affected":1}`, w.Body.String())

	w = c.do(http.MethodDelete, "/api/clients/"+customer["id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())

	w = c.do(http.MethodGet, "/api/audit-logs?entity=client", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPaginateEmpty(t *testing.T) {
	c := newClient(t)
	c.signUp("owner@salon.com")

	w := c.do(http.MethodGet, "/api/services/paginate?page=1&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	page := decode(t, w)
	assert.Equal(t, []any{}, page["items"])
	assert.EqualValues(t, 0, page["meta"].(map[string]any)["totalItems"])
}

func TestUploads(t *testing.T) {
	c := newClient(t)
	userID := c.signUp("owner@salon.com")

	w := c.upload("/api/upload/photo", "a.png")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, decode(t, w)["signedUrl"], "https://storage.test/photos/")

	w = c.upload("/api/upload/photo/bulk", "a.png", "notes.txt")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "File notes.txt is not an image!", decode(t, w)["message"])

	w = c.upload("/api/upload/photo/bulk", "a.png", "b.png")
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.upload("/api/user-photo?userId="+userID, "me.png")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, userID, decode(t, w)["user_id"])

	w = c.upload("/api/user-photo", "again.png")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User already has a photo", decode(t, w)["message"])
}

func TestBulkUploadFileLimit(t *testing.T) {
	c := newClient(t)
	c.signUp("owner@salon.com")

	names := make([]string, 11)
	for i := range names {
		names[i] = "a.png"
	}

	w := c.upload("/api/upload/photo/bulk", names...)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "too_many_files", decode(t, w)["error_code"])
}

func TestRemovedOwnerTakesBranchAlong(t *testing.T) {
	c := newClient(t)
	c.signUp("admin@salon.com")

	w := c.do(http.MethodPost, "/api/user", map[string]any{
		"user_name": "Owner", "user_email": "owner@salon.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ownerID := decode(t, w)["id"].(string)

	w = c.do(http.MethodPost, "/api/branchs", map[string]any{
		"branch_name": "Centro", "street": "Rua A", "cep": "01001000", "city": "Campinas",
		"district": "Sé", "local_number": "12", "opening_hours": "08:00", "closing_hours": "18:00",
		"user_id": ownerID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	branchID := decode(t, w)["id"].(string)

	w = c.do(http.MethodDelete, "/api/user/"+ownerID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/branchs/"+branchID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodPost, "/api/clients", map[string]any{
		"client_name": "Maria", "first_name": "Maria", "birth_date": "1990-01-01", "branch_id": branchID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Branch not found!", decode(t, w)["message"])
}
