package restapi

import (
	"net/http"

	"github.com/launchrecords/launchdash/internal/models"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(map[string]interface{}{
		"status":  "ok",
		"env":     api.Config.Env.String(),
		"records": api.Dataset.Len(),
	}))
}
