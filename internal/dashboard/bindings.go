package dashboard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/launchrecords/launchdash/internal/launches"
	"github.com/launchrecords/launchdash/internal/metrics"
	"github.com/launchrecords/launchdash/internal/reactive"
)

// Input and output identifiers shared with the page.
const (
	InputSiteDropdown  reactive.InputID  = "site-dropdown"
	InputPayloadSlider reactive.InputID  = "payload-slider"
	OutputPieChart     reactive.OutputID = "success-pie-chart"
	OutputScatterChart reactive.OutputID = "success-payload-scatter-chart"
)

// ErrInvalidInput marks input values of the wrong shape.
var ErrInvalidInput = errors.New("invalid input value")

// Bindings registers the pie and scatter handlers:
// the dropdown drives the pie chart, the dropdown and slider drive the
// scatter chart.
func (s *Service) Bindings() (*reactive.Registry, error) {
	r := reactive.NewRegistry()

	err := r.Register(OutputPieChart, []reactive.InputID{InputSiteDropdown}, instrument(OutputPieChart, func(args ...any) (any, error) {
		site, err := SiteValue(args[0])
		if err != nil {
			return nil, err
		}
		return s.PieChart(site), nil
	}))
	if err != nil {
		return nil, err
	}

	err = r.Register(OutputScatterChart, []reactive.InputID{InputSiteDropdown, InputPayloadSlider}, instrument(OutputScatterChart, func(args ...any) (any, error) {
		site, err := SiteValue(args[0])
		if err != nil {
			return nil, err
		}
		payload, err := PayloadRangeValue(args[1])
		if err != nil {
			return nil, err
		}
		return s.ScatterChart(site, payload), nil
	}))
	if err != nil {
		return nil, err
	}

	return r, nil
}

func instrument(output reactive.OutputID, h reactive.Handler) reactive.Handler {
	return func(args ...any) (any, error) {
		started := time.Now()
		v, err := h(args...)
		metrics.ObserveEvaluation(string(output), started, err)
		return v, err
	}
}

// DefaultValues is the selection shown on first load: every site and the
// full payload range of the dataset.
func (s *Service) DefaultValues() reactive.Values {
	return reactive.Values{
		InputSiteDropdown:  launches.AllSites,
		InputPayloadSlider: s.DefaultPayloadRange(),
	}
}

// SiteValue converts a dropdown value.
func SiteValue(v any) (string, error) {
	site, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidInput, InputSiteDropdown, v)
	}
	return site, nil
}

// PayloadRangeValue converts a slider value. The slider reports a two element
// list [min, max], as decoded from JSON, but PayloadRange and [2]float64 are
// accepted too.
func PayloadRangeValue(v any) (PayloadRange, error) {
	switch val := v.(type) {
	case PayloadRange:
		return finiteRange(val.Min, val.Max, v)
	case [2]float64:
		return finiteRange(val[0], val[1], v)
	case []float64:
		if len(val) == 2 {
			return finiteRange(val[0], val[1], v)
		}
	case []any:
		if len(val) == 2 {
			lo, errLo := number(val[0])
			hi, errHi := number(val[1])
			if errLo == nil && errHi == nil {
				return PayloadRange{Min: lo, Max: hi}, nil
			}
		}
	case map[string]any:
		lo, errLo := number(val["min"])
		hi, errHi := number(val["max"])
		if errLo == nil && errHi == nil {
			return PayloadRange{Min: lo, Max: hi}, nil
		}
	}
	return PayloadRange{}, fmt.Errorf("%w: %s must be [min, max], got %v", ErrInvalidInput, InputPayloadSlider, v)
}

func finiteRange(lo, hi float64, v any) (PayloadRange, error) {
	if _, err := number(lo); err != nil {
		return PayloadRange{}, fmt.Errorf("%w: %s must be [min, max], got %v", ErrInvalidInput, InputPayloadSlider, v)
	}
	if _, err := number(hi); err != nil {
		return PayloadRange{}, fmt.Errorf("%w: %s must be [min, max], got %v", ErrInvalidInput, InputPayloadSlider, v)
	}
	return PayloadRange{Min: lo, Max: hi}, nil
}

// number accepts finite numbers only; NaN and infinities cannot be drawn.
func number(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%v is not a number", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not a finite number", v)
	}
	return f, nil
}
