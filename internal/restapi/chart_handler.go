package restapi

import (
	"errors"
	"net/http"

	"github.com/launchrecords/launchdash/internal/dashboard"
	"github.com/launchrecords/launchdash/internal/models"
	"github.com/launchrecords/launchdash/internal/reactive"
	"github.com/launchrecords/launchdash/internal/utils"
)

// chartHandler evaluates one output for the inputs given in the query:
// site (default ALL), min and max (default the dataset payload bounds).
func (api *RestAPI) chartHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	values, fieldErrors := api.ChartInputs(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	output := reactive.OutputID(id)
	value, err := api.Bindings.Evaluate(output, values)
	if errors.Is(err, reactive.ErrUnknownOutput) {
		api.sendNotFound(w, r)
		return
	}
	if errors.Is(err, dashboard.ErrInvalidInput) {
		api.validationErrorResponse(w, r, map[string][]string{"inputs": {err.Error()}})
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry, err := api.chartEntry(output, value)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
