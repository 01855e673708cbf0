package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/config"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
)

type mockPartService struct {
	mock.Mock
}

func (m *mockPartService) CreatePart(ctx context.Context, in domain.NewPart) (*domain.Part, error) {
	args := m.Called(ctx, in)
	if v := args.Get(0); v != nil {
		return v.(*domain.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPartService) GetPartByID(ctx context.Context, id string) (*domain.Part, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPartService) ListParts(ctx context.Context, filter domain.PartFilter, sortBy string) ([]*domain.Part, error) {
	args := m.Called(ctx, filter, sortBy)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPartService) UpdatePart(ctx context.Context, id string, in domain.PartUpdate) (*domain.Part, error) {
	args := m.Called(ctx, id, in)
	if v := args.Get(0); v != nil {
		return v.(*domain.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPartService) DeletePart(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPartService) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.CatalogStats), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUploadService struct {
	mock.Mock
}

func (m *mockUploadService) UploadImage(ctx context.Context, file domain.UploadFile) (*domain.UploadedAsset, error) {
	args := m.Called(ctx, file)
	if v := args.Get(0); v != nil {
		return v.(*domain.UploadedAsset), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUploadService) UploadImages(ctx context.Context, files []domain.UploadFile) []*domain.UploadedAsset {
	args := m.Called(ctx, files)
	if v := args.Get(0); v != nil {
		return v.([]*domain.UploadedAsset)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

type noopMetrics struct{}

func (noopMetrics) RecordMetrics(*gin.Context, time.Time) {}

// newTestRouter wires the full route table around mocked services so tests
// exercise the real paths, middleware and response envelopes.
func newTestRouter(t *testing.T, parts *mockPartService, uploads *mockUploadService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	partHandler := NewPartHandler(parts, noopLogger{}, noopMetrics{}, t.TempDir())
	uploadHandler := NewUploadHandler(uploads, noopLogger{}, noopMetrics{}, t.TempDir())

	router, err := NewRouter(
		&config.HTTP{Port: "3000", AllowedOrigins: "*"},
		partHandler,
		uploadHandler,
	)
	require.NoError(t, err)

	return router.Engine()
}

func doRequest(t *testing.T, engine *gin.Engine, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// multipartBody builds a multipart form from string fields plus optional file
// parts, keyed by field name to file name.
func multipartBody(t *testing.T, fields map[string]string, files map[string][]string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := w.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("fake image bytes"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func getJSON(t *testing.T, engine *gin.Engine, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := doRequest(t, engine, http.MethodGet, target, nil, "")
	return rec, decodeBody(t, rec)
}
