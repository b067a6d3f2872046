package main

import (
	"net/http"

	"unitconv.dev/internal/app"
	"unitconv.dev/internal/restapi"
	"unitconv.dev/internal/webui"
)

// buildHandler mounts the JSON API under /api/ and the web pages everywhere
// else, wrapped in request logging and compression. The returned func stops
// background work of the API.
func buildHandler(application *app.Application) (http.Handler, func(), error) {
	api := restapi.NewRestAPI(application)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.Handler())
	webui.New(application).SetWebUIRoutes(mux)

	compress, err := restapi.NewCompressionMiddleware(application.Config.Compression)
	if err != nil {
		api.Close()
		return nil, nil, err
	}

	handler := restapi.NewRequestLoggingMiddleware(application.Logger)(compress(mux))
	return handler, api.Close, nil
}
