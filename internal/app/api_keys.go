package app

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader is accepted as an alternative to the key query parameter.
const APIKeyHeader = "X-API-Key"

// RequestAPIKey returns the API key of a request: the key query parameter,
// or the X-API-Key header when the parameter is absent.
func RequestAPIKey(r *http.Request) string {
	if key := r.URL.Query().Get("key"); key != "" {
		return key
	}
	return r.Header.Get(APIKeyHeader)
}

func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return app.IsInvalidAPIKey(RequestAPIKey(r))
}

func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}

	for _, validKey := range app.Config.ApiKeys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(validKey)) == 1 {
			return false
		}
	}

	return true
}
