package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "Basic ID",
			id:   "success-pie-chart",
			want: "success-pie-chart",
		},
		{
			name: "ID with JSON extension",
			id:   "success-pie-chart.json",
			want: "success-pie-chart",
		},
		{
			name: "ID with HTML extension",
			id:   "success-payload-scatter-chart.html",
			want: "success-payload-scatter-chart",
		},
		{
			name: "ID with multiple dots",
			id:   "789.data.json",
			want: "789.data",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.Handler(http.MethodGet, "/api/test/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "id")
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/test/"+tc.id, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result, "ExtractIDFromParams should correctly extract and clean the ID")
		})
	}
}

func TestSplitFormat(t *testing.T) {
	id, format := SplitFormat("sites.json")
	assert.Equal(t, "sites", id)
	assert.Equal(t, "json", format)

	id, format = SplitFormat("success-pie-chart.html")
	assert.Equal(t, "success-pie-chart", id)
	assert.Equal(t, "html", format)

	id, format = SplitFormat("plain")
	assert.Equal(t, "plain", id)
	assert.Empty(t, format)
}
