package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/service-generator/internal/config"
	"github.com/deppfellow/service-generator/internal/errs"
	"github.com/deppfellow/service-generator/internal/model"
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/deppfellow/service-generator/internal/service"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	logger := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)
	return s
}

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(method, target, nil), rec), rec
}

func newDaemonHandler(t *testing.T) *DaemonHandler {
	t.Helper()

	s := newTestServer(t)
	return NewDaemonHandler(s, service.NewDaemonService(s, service.NewIssuer()))
}

func TestRegisterRequestBind(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		present bool
		want    string
	}{
		{"absent", "/daemon", false, ""},
		{"empty value", "/daemon?register=", true, ""},
		{"bare key", "/daemon?register", true, ""},
		{"value", "/daemon?register=hello%20world", true, "hello world"},
		{"first of many", "/daemon?register=a&register=b", true, "a"},
		{"other params only", "/daemon?other=x", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, tt.target)
			req := NewRegisterRequest()

			require.NoError(t, req.Bind(c))

			if !tt.present {
				assert.Nil(t, req.ServiceFileContent)
				return
			}
			require.NotNil(t, req.ServiceFileContent)
			assert.Equal(t, tt.want, *req.ServiceFileContent)
		})
	}
}

func TestHandleRegisterAccepted(t *testing.T) {
	h := newDaemonHandler(t)
	c, rec := newContext(http.MethodPost, "/daemon?register=hello")

	err := Handle(h.Handler, h.Register, http.StatusAccepted, NewRegisterRequest)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var got model.Registration
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, model.Registration{ID: 1, ServiceFileContent: "hello"}, got)
}

func TestHandleRegisterMissingReturnsBodilessNotFound(t *testing.T) {
	h := newDaemonHandler(t)
	c, rec := newContext(http.MethodPost, "/daemon")

	err := Handle(h.Handler, h.Register, http.StatusAccepted, NewRegisterRequest)(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, httpErr.NoBody)
	assert.Equal(t, service.ErrCodeRegistrationMissing, httpErr.Code)

	// Nothing is written until the error handler runs.
	assert.Empty(t, rec.Body.String())
}

func TestHandleAllocatesRequestPerCall(t *testing.T) {
	h := newDaemonHandler(t)
	registerHandler := Handle(h.Handler, h.Register, http.StatusAccepted, NewRegisterRequest)

	c, _ := newContext(http.MethodPost, "/daemon?register=first")
	require.NoError(t, registerHandler(c))

	// A later request without the parameter must not see the earlier content.
	c, _ = newContext(http.MethodPost, "/daemon")
	assert.Error(t, registerHandler(c))
}

func TestInfo(t *testing.T) {
	h := newDaemonHandler(t)
	c, rec := newContext(http.MethodGet, "/daemon/info")

	require.NoError(t, Handle(h.Handler, h.Info, http.StatusOK, NewInfoRequest)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"service-generator","version":"0.1.0"}`, rec.Body.String())
}

func TestCheckHealth(t *testing.T) {
	h := NewHealthHandler(newTestServer(t))
	c, rec := newContext(http.MethodGet, "/status")

	require.NoError(t, h.CheckHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status      string                       `json:"status"`
		Environment string                       `json:"environment"`
		Service     string                       `json:"service"`
		Version     string                       `json:"version"`
		Uptime      string                       `json:"uptime"`
		Checks      map[string]map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "development", body.Environment)
	assert.Equal(t, "service-generator", body.Service)
	assert.Equal(t, "0.1.0", body.Version)
	assert.NotEmpty(t, body.Uptime)
	assert.Equal(t, "healthy", body.Checks["issuer"]["status"])
	assert.Equal(t, "disabled", body.Checks["new_relic"]["status"])
}

func TestServeOpenAPIUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.html"), []byte("<html>docs</html>"), 0o644))

	h := NewOpenAPIHandler(newTestServer(t))
	h.staticDir = dir

	c, rec := newContext(http.MethodGet, "/docs")
	require.NoError(t, h.ServeOpenAPIUI(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "<html>docs</html>", rec.Body.String())
}

func TestServeOpenAPIUIMissingFile(t *testing.T) {
	h := NewOpenAPIHandler(newTestServer(t))
	h.staticDir = t.TempDir()

	c, _ := newContext(http.MethodGet, "/docs")
	assert.Error(t, h.ServeOpenAPIUI(c))
}

type recordedAttributes map[string]interface{}

func (r recordedAttributes) AddAttribute(key string, value interface{}) {
	r[key] = value
}

func TestJSONResponseHandlerAttributes(t *testing.T) {
	rh := JSONResponseHandler{status: http.StatusAccepted}

	before := recordedAttributes{}
	rh.AddAttributes(before, nil)
	assert.Equal(t, recordedAttributes{"http.response_type": "json"}, before)

	after := recordedAttributes{}
	rh.AddAttributes(after, &model.Registration{ID: 1})
	assert.Equal(t, "json", after["http.response_type"])
	assert.Equal(t, "*model.Registration", after["response.result_type"])
}
