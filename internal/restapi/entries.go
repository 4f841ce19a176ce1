package restapi

import (
	"fmt"

	"github.com/launchrecords/launchdash/internal/dashboard"
	"github.com/launchrecords/launchdash/internal/reactive"
)

// ChartEntry is one rendered output: the chart spec plus the ECharts option
// the page passes to setOption.
type ChartEntry struct {
	ID     string                 `json:"id"`
	Spec   dashboard.ChartSpec    `json:"spec"`
	Option map[string]interface{} `json:"option"`
}

// PayloadRangeEntry configures the payload slider.
type PayloadRangeEntry struct {
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Step  float64   `json:"step"`
	Marks []float64 `json:"marks"`
	Value []float64 `json:"value"`
}

// UpdateRequest notifies the server that inputs changed. Inputs carries the
// current value of every input; inputs left out take their defaults. An
// empty Changed list recomputes every output.
type UpdateRequest struct {
	Seq     uint64         `json:"seq"`
	Changed []string       `json:"changed"`
	Inputs  map[string]any `json:"inputs"`
}

// UpdateResponse carries the recomputed outputs. Seq echoes the request so
// the page can ignore responses older than the newest one it has applied.
type UpdateResponse struct {
	Seq     uint64       `json:"seq"`
	Outputs []ChartEntry `json:"outputs"`
}

func (api *RestAPI) chartEntry(output reactive.OutputID, value any) (ChartEntry, error) {
	spec, ok := value.(dashboard.ChartSpec)
	if !ok {
		return ChartEntry{}, fmt.Errorf("output %s produced %T, want chart spec", output, value)
	}
	option, err := api.Renderer.Option(spec)
	if err != nil {
		return ChartEntry{}, fmt.Errorf("output %s: %w", output, err)
	}
	return ChartEntry{ID: string(output), Spec: spec, Option: option}, nil
}

func (api *RestAPI) chartEntries(update reactive.Update) ([]ChartEntry, error) {
	entries := make([]ChartEntry, 0, len(update.Results))
	for _, res := range update.Results {
		entry, err := api.chartEntry(res.Output, res.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func sliderMarks() []float64 {
	marks := []float64{}
	for v := dashboard.SliderMin; v <= dashboard.SliderMax; v += dashboard.SliderMark {
		marks = append(marks, float64(v))
	}
	return marks
}
