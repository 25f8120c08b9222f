package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routes struct{}

func (routes) Register(r gin.IRouter) {
	r.GET("/boom", func(*gin.Context) { panic("kraken") })
	r.GET("/missing", func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "not found"}) })
}

func TestHealthz(t *testing.T) {
	var buf bytes.Buffer
	srv := httptest.NewServer(New(Options{}, zerolog.New(&buf)))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	_, err = uuid.Parse(res.Header.Get("X-Request-ID"))
	assert.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/healthz", line["path"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
	assert.Equal(t, res.Header.Get("X-Request-ID"), line["request_id"])
}

func TestRequestIDIsEchoed(t *testing.T) {
	srv := httptest.NewServer(New(Options{}, zerolog.Nop()))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set("X-Request-ID", "reef-42")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, "reef-42", res.Header.Get("X-Request-ID"))
}

func TestRecoveryAndWarnings(t *testing.T) {
	var buf bytes.Buffer
	srv := httptest.NewServer(New(Options{}, zerolog.New(&buf), routes{}))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/boom")
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, buf.String(), "kraken")

	buf.Reset()
	res, err = http.Get(srv.URL + "/missing")
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestCORS(t *testing.T) {
	srv := httptest.NewServer(New(Options{AllowedOrigins: []string{"https://oceanica.example"}}, zerolog.Nop()))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set("Origin", "https://oceanica.example")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Equal(t, "https://oceanica.example", res.Header.Get("Access-Control-Allow-Origin"))

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
}
