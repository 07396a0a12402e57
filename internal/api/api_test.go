package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(maxCells int) http.Handler {
	gin.SetMode(gin.TestMode)
	return NewRouter(Config{
		BaseURL:     "/api",
		Controllers: []Controller{NewSearchController(maxCells, nil)},
	}).Handler()
}

func post(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h := newTestHandler(100)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSearch(t *testing.T) {
	h := newTestHandler(100)

	for _, alg := range []string{"bfs", "astar", ""} {
		t.Run("alg="+alg, func(t *testing.T) {
			w := post(t, h, "/api/v1/search", SearchRequest{
				Grid:      []string{"S#.", "..F"},
				Algorithm: alg,
			})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp SearchResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			_, err := uuid.Parse(resp.ID)
			require.NoError(t, err)
			assert.True(t, resp.Found)
			assert.Equal(t, []Point{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, resp.Path)
			assert.Equal(t, 3, resp.PathLength)
			assert.Equal(t, len(resp.Visited), resp.VisitedCount)
			assert.GreaterOrEqual(t, resp.ExecutionTimeMs, 0.0)
			if alg == "" {
				assert.Equal(t, "bfs", resp.Algorithm)
			}
		})
	}
}

func TestSearch_Unreachable(t *testing.T) {
	h := newTestHandler(100)
	w := post(t, h, "/api/v1/search", SearchRequest{Grid: []string{"S#F"}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
	assert.Equal(t, -1, resp.PathLength)
	assert.Empty(t, resp.Path)
}

func TestSearch_BadRequests(t *testing.T) {
	h := newTestHandler(6)
	cases := map[string]interface{}{
		"no grid":        gin.H{"algorithm": "bfs"},
		"empty grid":     gin.H{"grid": []string{}},
		"unknown alg":    SearchRequest{Grid: []string{"SF"}, Algorithm: "dfs"},
		"ragged":         SearchRequest{Grid: []string{"S.", "..F"}},
		"bad tile":       SearchRequest{Grid: []string{"S?F"}},
		"no finish":      SearchRequest{Grid: []string{"S.."}},
		"too many cells": SearchRequest{Grid: []string{"S...", "...F"}},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := post(t, h, "/api/v1/search", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestRandomGrid(t *testing.T) {
	h := newTestHandler(1000)
	req := RandomGridRequest{Rows: 10, Cols: 20, MaxCoverage: 30, Seed: 5}

	var first, second RandomGridResponse
	w := post(t, h, "/api/v1/grid/random", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	w = post(t, h, "/api/v1/grid/random", req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))

	require.Equal(t, first, second, "same seed, same grid")
	require.Len(t, first.Grid, 10)
	require.Len(t, first.Grid[0], 20)
	require.Equal(t, byte('S'), first.Grid[0][0])
	require.Equal(t, byte('F'), first.Grid[9][19])
	require.GreaterOrEqual(t, first.Coverage, 1)
	require.LessOrEqual(t, first.Coverage, 30)
}

func TestRandomGrid_BadRequests(t *testing.T) {
	h := newTestHandler(50)
	// (MaxInt/2+2)*4 wraps around to 4 in int arithmetic.
	cases := map[string]interface{}{
		"missing rows":     gin.H{"cols": 3},
		"coverage high":    RandomGridRequest{Rows: 2, Cols: 2, MaxCoverage: 101},
		"single cell":      RandomGridRequest{Rows: 1, Cols: 1},
		"too many cells":   RandomGridRequest{Rows: 10, Cols: 10},
		"overflowing size": RandomGridRequest{Rows: math.MaxInt/2 + 2, Cols: 4, Seed: 1},
		"tall":             RandomGridRequest{Rows: 51, Cols: 1},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := post(t, h, "/api/v1/grid/random", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}
