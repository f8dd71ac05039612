package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sarang-church/backend/models"
)

func TestExport(t *testing.T) {
	store := &fakeStore{items: []models.NewsPost{
		{ID: 1, Title: "창립 기념 주일", Date: "2024-05-05", Category: "행사안내", Views: 120},
	}, seq: 1}
	r := newTestRouter(t, store)

	w := doJSON(t, r, http.MethodGet, "/api/news/export", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	require.NotZero(t, w.Body.Len())
}

func TestExport_UnsupportedFormat(t *testing.T) {
	r := newTestRouter(t, &fakeStore{})

	// pdf is not offered: the renderer has no font covering the Korean
	// content, so only xlsx ships
	for _, format := range []string{"pdf", "csv"} {
		w := doJSON(t, r, http.MethodGet, "/api/news/export?format="+format, "", true)
		require.Equal(t, http.StatusBadRequest, w.Code, format)
		require.Contains(t, w.Body.String(), "unsupported format")
	}
}

func TestExport_RequiresAdmin(t *testing.T) {
	r := newTestRouter(t, &fakeStore{})

	w := doJSON(t, r, http.MethodGet, "/api/news/export", "", false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
