// Package restapi serves the dashboard's JSON endpoints: dropdown options,
// slider configuration, chart options and input change notifications.
package restapi

import (
	"github.com/launchrecords/launchdash/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}
