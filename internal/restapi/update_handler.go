package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/launchrecords/launchdash/internal/dashboard"
	"github.com/launchrecords/launchdash/internal/logging"
	"github.com/launchrecords/launchdash/internal/metrics"
	"github.com/launchrecords/launchdash/internal/models"
	"github.com/launchrecords/launchdash/internal/reactive"
	"github.com/launchrecords/launchdash/internal/utils"
)

const maxUpdateBodyBytes = 64 << 10

// updateHandler dispatches an input change notification and returns every
// output that depends on the changed inputs.
func (api *RestAPI) updateHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpdateBodyBytes)

	var req UpdateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		metrics.UpdateRequests.WithLabelValues("invalid").Inc()
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {fmt.Sprintf("invalid update request: %v", err)},
		})
		return
	}

	notification, fieldErrors := api.notification(req)
	if len(fieldErrors) > 0 {
		metrics.UpdateRequests.WithLabelValues("invalid").Inc()
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	var (
		update reactive.Update
		err    error
	)
	if len(notification.Changed) == 0 {
		update, err = api.Bindings.Initial(notification.Values)
		update.Seq = notification.Seq
	} else {
		update, err = api.Bindings.Dispatch(notification)
	}
	if errors.Is(err, dashboard.ErrInvalidInput) {
		metrics.UpdateRequests.WithLabelValues("invalid").Inc()
		api.validationErrorResponse(w, r, map[string][]string{"inputs": {err.Error()}})
		return
	}
	if err != nil {
		metrics.UpdateRequests.WithLabelValues("error").Inc()
		api.serverErrorResponse(w, r, err)
		return
	}

	outputs, err := api.chartEntries(update)
	if err != nil {
		metrics.UpdateRequests.WithLabelValues("error").Inc()
		api.serverErrorResponse(w, r, err)
		return
	}

	metrics.UpdateRequests.WithLabelValues("ok").Inc()
	logging.FromContext(r.Context()).Debug("inputs dispatched",
		slog.Uint64("seq", update.Seq),
		slog.Any("changed", req.Changed),
		slog.Int("outputs", len(outputs)))

	api.sendResponse(w, r, models.NewEntryResponse(UpdateResponse{Seq: update.Seq, Outputs: outputs}))
}

// notification validates req against the registered inputs and fills in
// defaults for inputs the page did not send.
func (api *RestAPI) notification(req UpdateRequest) (reactive.Notification, map[string][]string) {
	fieldErrors := make(map[string][]string)

	values := api.Dashboard.DefaultValues()
	for name, v := range req.Inputs {
		in := reactive.InputID(name)
		if !api.Bindings.HasInput(in) {
			fieldErrors["inputs"] = append(fieldErrors["inputs"], fmt.Sprintf("unknown input %q", name))
			continue
		}
		values[in] = v
	}

	if site, ok := values[dashboard.InputSiteDropdown].(string); ok {
		if err := utils.ValidateSite(site); err != nil {
			fieldErrors[string(dashboard.InputSiteDropdown)] = append(fieldErrors[string(dashboard.InputSiteDropdown)], err.Error())
		}
	}

	changed := make([]reactive.InputID, 0, len(req.Changed))
	for _, name := range req.Changed {
		in := reactive.InputID(name)
		if !api.Bindings.HasInput(in) {
			fieldErrors["changed"] = append(fieldErrors["changed"], fmt.Sprintf("unknown input %q", name))
			continue
		}
		changed = append(changed, in)
	}

	return reactive.Notification{Seq: req.Seq, Changed: changed, Values: values}, fieldErrors
}
