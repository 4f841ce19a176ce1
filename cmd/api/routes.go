package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/launchrecords/launchdash/internal/app"
	"github.com/launchrecords/launchdash/internal/restapi"
	"github.com/launchrecords/launchdash/internal/webui"
)

func routes(application *app.Application) http.Handler {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)

	handler := api.WithSecurityHeaders(router)
	handler = restapi.CompressionMiddleware(handler)
	return restapi.NewRequestLoggingMiddleware(application.Logger)(handler)
}
