package restapi

import (
	"net/http"

	"github.com/launchrecords/launchdash/internal/models"
)

func (api *RestAPI) sitesHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.Dataset.SiteOptions()))
}

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(api.Dataset.Summary()))
}
