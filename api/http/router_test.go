package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/staffing/api/http/handlers"
	"github.com/artem13815/staffing/api/http/presenter"
	"github.com/artem13815/staffing/pkg/export"
	"github.com/artem13815/staffing/pkg/health"
	"github.com/artem13815/staffing/pkg/security/jwt"
	"github.com/artem13815/staffing/pkg/staffing"
)

const (
	secret = "test-secret"
	issuer = "hr-service"
)

const sample = "CV - QA - Automation QA - Insider - tmura - R-12793\n" +
	"Описание\n" +
	"1. Индустрия проекта FinTech\n" +
	"2. Требования: Java, Selenium\n" +
	"4. Ожидаемая загрузка 1"

type memRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]staffing.Request
}

func (r *memRepo) Create(_ context.Context, req staffing.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[req.ID] = req
	return nil
}

func (r *memRepo) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (staffing.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.rows[id]
	if !ok || req.OwnerID != ownerID {
		return staffing.Request{}, staffing.ErrNotFound
	}
	return req, nil
}

func (r *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]staffing.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []staffing.Request
	for _, req := range r.rows {
		if req.OwnerID == ownerID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.rows[id]
	if !ok || req.OwnerID != ownerID {
		return staffing.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type failingChecker struct{}

func (failingChecker) Name() string                { return "postgres" }
func (failingChecker) Check(context.Context) error { return errors.New("down") }

type env struct {
	app   *fiber.App
	owner uuid.UUID
	token string
}

func newEnv(t *testing.T, checkers ...health.Checker) env {
	t.Helper()
	repo := &memRepo{rows: map[uuid.UUID]staffing.Request{}}
	svc := staffing.NewService(repo, nil, export.NewService(nil), nil, staffing.Options{}, nil)

	app := fiber.New()
	Register(app,
		handlers.NewHealthHandler(health.NewService(checkers...)),
		handlers.NewRequestsHandler(svc, 1<<20, nil),
		jwt.NewAuthMiddleware(secret, issuer),
	)
	owner := uuid.New()
	token, err := jwt.NewGenerator(secret, issuer, time.Hour).Generate(owner)
	require.NoError(t, err)
	return env{app: app, owner: owner, token: token}
}

func (e env) do(t *testing.T, method, path, contentType string, body io.Reader, token string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e env) postText(t *testing.T, path, text string) *nethttp.Response {
	t.Helper()
	body, err := json.Marshal(handlers.TextRequest{Text: text})
	require.NoError(t, err)
	return e.do(t, nethttp.MethodPost, path, fiber.MIMEApplicationJSON, bytes.NewReader(body), e.token)
}

func decode[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestProbes(t *testing.T) {
	e := newEnv(t)
	resp := e.do(t, nethttp.MethodGet, "/api/v1/health", "", nil, "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp = e.do(t, nethttp.MethodGet, "/api/v1/ready", "", nil, "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	down := newEnv(t, failingChecker{})
	resp = down.do(t, nethttp.MethodGet, "/api/v1/ready", "", nil, "")
	assert.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "postgres: down", decode[map[string]string](t, resp)["details"])
}

func TestRequestsRequireToken(t *testing.T) {
	e := newEnv(t)
	resp := e.do(t, nethttp.MethodGet, "/api/v1/requests", "", nil, "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestRequestLifecycle(t *testing.T) {
	e := newEnv(t)

	resp := e.postText(t, "/api/v1/requests", sample)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	created := decode[staffing.Request](t, resp)
	assert.Equal(t, e.owner, created.OwnerID)
	assert.Equal(t, "Insider", created.Extraction.Meta.Company)
	assert.Equal(t, []int{3}, created.Extraction.MissingItems)
	assert.Equal(t, []string{"Java", "Selenium"}, created.Extraction.Technologies.Required)

	path := "/api/v1/requests/" + created.ID.String()
	resp = e.do(t, nethttp.MethodGet, path, "", nil, e.token)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	got := decode[staffing.Request](t, resp)
	assert.Equal(t, created.Extraction.Items, got.Extraction.Items)

	resp = e.do(t, nethttp.MethodGet, "/api/v1/requests?limit=5", "", nil, e.token)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	page := decode[presenter.Page[staffing.Request]](t, resp)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 5, page.Limit)

	resp = e.do(t, nethttp.MethodGet, path+"/export", "", nil, e.token)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), created.ID.String())
	xlsx, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(xlsx, []byte("PK")))

	resp = e.do(t, nethttp.MethodDelete, path, "", nil, e.token)
	assert.Equal(t, nethttp.StatusNoContent, resp.StatusCode)
	resp = e.do(t, nethttp.MethodGet, path, "", nil, e.token)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestRequestOfAnotherOwner(t *testing.T) {
	e := newEnv(t)
	resp := e.postText(t, "/api/v1/requests", sample)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	created := decode[staffing.Request](t, resp)

	other, err := jwt.NewGenerator(secret, issuer, time.Hour).Generate(uuid.New())
	require.NoError(t, err)
	resp = e.do(t, nethttp.MethodGet, "/api/v1/requests/"+created.ID.String(), "", nil, other)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestCreateFromFile(t *testing.T) {
	e := newEnv(t)

	body, ct := multipartBody(t, "request.txt", sample)
	resp := e.do(t, nethttp.MethodPost, "/api/v1/requests", ct, body, e.token)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	created := decode[staffing.Request](t, resp)
	assert.Equal(t, "request.txt", created.Filename)
	assert.Equal(t, "R-12793", created.Extraction.Meta.RequestID)

	body, ct = multipartBody(t, "scan.png", "binary")
	resp = e.do(t, nethttp.MethodPost, "/api/v1/requests", ct, body, e.token)
	assert.Equal(t, nethttp.StatusUnsupportedMediaType, resp.StatusCode)

	body, ct = multipartBody(t, "broken.docx", "not a zip")
	resp = e.do(t, nethttp.MethodPost, "/api/v1/requests", ct, body, e.token)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestCreateRejectsBadInput(t *testing.T) {
	e := newEnv(t)

	resp := e.postText(t, "/api/v1/requests", "   ")
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "request text is empty", decode[presenter.ErrorResponse](t, resp).Message)

	resp = e.do(t, nethttp.MethodPost, "/api/v1/requests", fiber.MIMEApplicationJSON, bytes.NewReader([]byte("{")), e.token)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	resp = e.do(t, nethttp.MethodGet, "/api/v1/requests/not-a-uuid", "", nil, e.token)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestPreviewDoesNotStore(t *testing.T) {
	e := newEnv(t)

	resp := e.postText(t, "/api/v1/requests/preview", sample)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	ex := decode[staffing.Extraction](t, resp)
	assert.Equal(t, "Индустрия проекта FinTech", ex.Items[1])

	resp = e.do(t, nethttp.MethodGet, "/api/v1/requests", "", nil, e.token)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[presenter.Page[staffing.Request]](t, resp).Items)
}
