package webui

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/launchrecords/launchdash/internal/dashboard"
	"github.com/launchrecords/launchdash/internal/logging"
	"github.com/launchrecords/launchdash/internal/reactive"
	"github.com/launchrecords/launchdash/internal/utils"
)

// chartPageHandler renders one output as a standalone go-echarts page. The
// query takes the same site, min and max parameters as the chart API.
func (webUI *WebUI) chartPageHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	values, fieldErrors := webUI.ChartInputs(r.URL.Query())
	if len(fieldErrors) > 0 {
		http.Error(w, formatFieldErrors(fieldErrors), http.StatusBadRequest)
		return
	}

	value, err := webUI.Bindings.Evaluate(reactive.OutputID(id), values)
	switch {
	case errors.Is(err, reactive.ErrUnknownOutput):
		http.NotFound(w, r)
		return
	case errors.Is(err, dashboard.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		webUI.serverError(w, r, err)
		return
	}

	spec, ok := value.(dashboard.ChartSpec)
	if !ok {
		webUI.serverError(w, r, fmt.Errorf("output %s produced %T, want chart spec", id, value))
		return
	}

	var buf bytes.Buffer
	if err := webUI.Renderer.RenderHTML(&buf, spec); err != nil {
		webUI.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", webUI.pagePolicy())
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to write chart page", err)
	}
}

func formatFieldErrors(fieldErrors map[string][]string) string {
	var b strings.Builder
	for field, msgs := range fieldErrors {
		for _, msg := range msgs {
			fmt.Fprintf(&b, "%s: %s\n", field, msg)
		}
	}
	return b.String()
}
