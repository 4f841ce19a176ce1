package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a parameter value from the request context and removes file extensions like ".json".
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)
	id, _ := SplitFormat(rawID)
	return id
}

// SplitFormat separates a trailing ".json" or ".html" extension from id.
// The returned format is empty when id carries neither.
func SplitFormat(id string) (string, string) {
	for _, ext := range []string{".json", ".html"} {
		if strings.HasSuffix(id, ext) {
			return strings.TrimSuffix(id, ext), strings.TrimPrefix(ext, ".")
		}
	}
	return id, ""
}
