package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coolbeans/lawlink/pkg/alias"
	"github.com/coolbeans/lawlink/pkg/citation"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	index := alias.NewIndex(map[alias.LawID][]string{
		1: {"Гражданский кодекс", "Гражданского кодекса", "ГК РФ"},
		2: {"Налоговый кодекс", "Налогового кодекса", "НК РФ"},
	})
	s, err := New(citation.NewExtractor(index), zap.NewNop(), nil)
	require.NoError(t, err)
	return s
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, zap.NewNop(), nil)
	assert.Error(t, err)

	index := alias.NewIndex(nil)
	_, err = New(citation.NewExtractor(index), nil, nil)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDetect(t *testing.T) {
	s := testServer(t)

	body := `{"text": "ст. 5 Гражданского кодекса"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DetectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Links, 1)

	link := resp.Links[0]
	require.NotNil(t, link.LawID)
	assert.Equal(t, alias.LawID(1), *link.LawID)
	require.NotNil(t, link.Article)
	assert.Equal(t, "5", *link.Article)
	assert.Nil(t, link.PointArticle)
	assert.Nil(t, link.SubpointArticle)

	// Absent fields serialize as explicit nulls, not omitted keys.
	assert.Contains(t, rec.Body.String(), `"point_article":null`)
}

func TestDetectNoCitations(t *testing.T) {
	s := testServer(t)

	body := `{"text": "Сегодня хорошая погода"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"links":[]}`, rec.Body.String())
}

func TestDetectBadRequests(t *testing.T) {
	s := testServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty text", `{"text": ""}`},
		{"missing text", `{}`},
		{"malformed json", `{"text": `},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lawlink_references_extracted_total")
}
