package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/status.json", validateAPIKey(api, api.statusHandler))
	router.Handler(http.MethodGet, "/api/categories.json", validateAPIKey(api, api.categoriesHandler))
	router.Handler(http.MethodGet, "/api/units/:category", validateAPIKey(api, api.unitsHandler))
	router.Handler(http.MethodGet, "/api/convert.json", validateAPIKey(api, api.convertHandler))
	router.Handler(http.MethodGet, "/api/ensure-distinct.json", validateAPIKey(api, api.ensureDistinctHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}
