package app

import (
	"net/url"

	"github.com/launchrecords/launchdash/internal/dashboard"
	"github.com/launchrecords/launchdash/internal/launches"
	"github.com/launchrecords/launchdash/internal/reactive"
	"github.com/launchrecords/launchdash/internal/utils"
)

// ChartInputs reads the dropdown and slider values from query parameters:
// site (default ALL), min and max (default the dataset payload bounds).
func (app *Application) ChartInputs(query url.Values) (reactive.Values, map[string][]string) {
	fieldErrors := make(map[string][]string)

	site := utils.ParseStringParam(query, "site", launches.AllSites)
	if err := utils.ValidateSite(site); err != nil {
		fieldErrors["site"] = append(fieldErrors["site"], err.Error())
	}

	defaults := app.Dashboard.DefaultPayloadRange()
	minKg, fieldErrors := utils.ParseFloatParam(query, "min", defaults.Min, fieldErrors)
	maxKg, fieldErrors := utils.ParseFloatParam(query, "max", defaults.Max, fieldErrors)

	return reactive.Values{
		dashboard.InputSiteDropdown:  site,
		dashboard.InputPayloadSlider: dashboard.PayloadRange{Min: minKg, Max: maxKg},
	}, fieldErrors
}
