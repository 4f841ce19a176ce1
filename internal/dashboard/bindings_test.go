package dashboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchrecords/launchdash/internal/launches"
	"github.com/launchrecords/launchdash/internal/reactive"
)

func TestBindings(t *testing.T) {
	svc := scenarioService(t)
	registry, err := svc.Bindings()
	require.NoError(t, err)

	assert.Equal(t, []reactive.OutputID{OutputPieChart, OutputScatterChart}, registry.Outputs())
	assert.Equal(t, []reactive.OutputID{OutputPieChart, OutputScatterChart}, registry.Dependents(InputSiteDropdown))
	assert.Equal(t, []reactive.OutputID{OutputScatterChart}, registry.Dependents(InputPayloadSlider))

	t.Run("initial render uses defaults", func(t *testing.T) {
		update, err := registry.Initial(svc.DefaultValues())
		require.NoError(t, err)
		require.Len(t, update.Results, 2)

		pie := update.Results[0].Value.(ChartSpec)
		assert.Equal(t, TitleSuccessesBySite, pie.Title)

		scatter := update.Results[1].Value.(ChartSpec)
		assert.Equal(t, 3, scatter.PointCount())
	})

	t.Run("slider change with JSON decoded values", func(t *testing.T) {
		update, err := registry.Dispatch(reactive.Notification{
			Seq:     2,
			Changed: []reactive.InputID{InputPayloadSlider},
			Values: reactive.Values{
				InputSiteDropdown:  launches.AllSites,
				InputPayloadSlider: []any{0.0, 1000.0},
			},
		})
		require.NoError(t, err)
		require.Len(t, update.Results, 1)
		assert.Equal(t, OutputScatterChart, update.Results[0].Output)
		assert.Equal(t, 2, update.Results[0].Value.(ChartSpec).PointCount())
	})

	t.Run("dropdown change redraws both charts", func(t *testing.T) {
		update, err := registry.Dispatch(reactive.Notification{
			Changed: []reactive.InputID{InputSiteDropdown},
			Values: reactive.Values{
				InputSiteDropdown:  "A",
				InputPayloadSlider: PayloadRange{Min: 0, Max: 10000},
			},
		})
		require.NoError(t, err)
		require.Len(t, update.Results, 2)
		assert.Equal(t, "Success Rate for A", update.Results[0].Value.(ChartSpec).Title)
		assert.Equal(t, 2, update.Results[1].Value.(ChartSpec).PointCount())
	})

	t.Run("bad input shape", func(t *testing.T) {
		_, err := registry.Evaluate(OutputPieChart, reactive.Values{InputSiteDropdown: 42})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = registry.Evaluate(OutputScatterChart, reactive.Values{
			InputSiteDropdown:  launches.AllSites,
			InputPayloadSlider: []any{"heavy", 1.0},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestPayloadRangeValue(t *testing.T) {
	testCases := []struct {
		name    string
		in      any
		want    PayloadRange
		wantErr bool
	}{
		{"struct", PayloadRange{Min: 1, Max: 2}, PayloadRange{Min: 1, Max: 2}, false},
		{"array", [2]float64{3, 4}, PayloadRange{Min: 3, Max: 4}, false},
		{"float slice", []float64{5, 6}, PayloadRange{Min: 5, Max: 6}, false},
		{"json list", []any{7.0, 8.0}, PayloadRange{Min: 7, Max: 8}, false},
		{"json list of strings", []any{"9", "10"}, PayloadRange{Min: 9, Max: 10}, false},
		{"json object", map[string]any{"min": 0.0, "max": 1.0}, PayloadRange{Min: 0, Max: 1}, false},
		{"too short", []any{1.0}, PayloadRange{}, true},
		{"float slice too long", []float64{1, 2, 3}, PayloadRange{}, true},
		{"not a number", []any{true, 1.0}, PayloadRange{}, true},
		{"nil", nil, PayloadRange{}, true},
		{"infinite strings", []any{"-Inf", "Inf"}, PayloadRange{}, true},
		{"NaN string", []any{"NaN", 1.0}, PayloadRange{}, true},
		{"NaN in object", map[string]any{"min": 0.0, "max": math.NaN()}, PayloadRange{}, true},
		{"infinite struct", PayloadRange{Min: 0, Max: math.Inf(1)}, PayloadRange{}, true},
		{"infinite array", [2]float64{math.Inf(-1), 0}, PayloadRange{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PayloadRangeValue(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSiteValue(t *testing.T) {
	site, err := SiteValue("KSC LC-39A")
	require.NoError(t, err)
	assert.Equal(t, "KSC LC-39A", site)

	_, err = SiteValue(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
