package restapi

import (
	"net/http"

	"github.com/launchrecords/launchdash/internal/dashboard"
	"github.com/launchrecords/launchdash/internal/models"
)

func (api *RestAPI) payloadRangeHandler(w http.ResponseWriter, r *http.Request) {
	initial := api.Dashboard.DefaultPayloadRange()

	entry := PayloadRangeEntry{
		Min:   dashboard.SliderMin,
		Max:   dashboard.SliderMax,
		Step:  dashboard.SliderStep,
		Marks: sliderMarks(),
		Value: []float64{initial.Min, initial.Max},
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
