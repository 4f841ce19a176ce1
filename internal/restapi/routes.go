package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetRoutes registers the API endpoints on router and installs the JSON
// not-found and method-not-allowed responses.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/sites.json", api.sitesHandler)
	router.HandlerFunc(http.MethodGet, "/api/payload-range.json", api.payloadRangeHandler)
	router.HandlerFunc(http.MethodGet, "/api/summary.json", api.summaryHandler)
	router.HandlerFunc(http.MethodGet, "/api/charts/:id", api.chartHandler)
	router.HandlerFunc(http.MethodPost, "/api/update", api.updateHandler)

	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
}
