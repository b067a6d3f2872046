package restapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"unitconv.dev/internal/logging"
	"unitconv.dev/internal/models"
)

const (
	contentTypeJSON    = "application/json"
	contentTypeMsgpack = "application/msgpack"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	contentType, body, err := marshalFor(r, response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.write(w, http.StatusOK, contentType, body)
}

// wantsMsgpack reports whether the client asked for a msgpack body.
func wantsMsgpack(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, contentTypeMsgpack) || strings.Contains(accept, "application/x-msgpack")
}

// marshalFor encodes v as msgpack when the client accepts it and as JSON
// otherwise. msgpack keys follow the json struct tags.
func marshalFor(r *http.Request, v interface{}) (string, []byte, error) {
	var buf bytes.Buffer

	if wantsMsgpack(r) {
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			return "", nil, err
		}
		return contentTypeMsgpack, buf.Bytes(), nil
	}

	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return "", nil, err
	}
	return contentTypeJSON, buf.Bytes(), nil
}

func (api *RestAPI) write(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.LogError(api.Logger, "failed to write response", err,
			slog.Int("status", status),
			slog.String("component", "rest_api"))
	}
}

// encode marshals v for the client and writes it with the given status.
func (api *RestAPI) encode(w http.ResponseWriter, r *http.Request, status int, v interface{}) error {
	contentType, body, err := marshalFor(r, v)
	if err != nil {
		return err
	}
	api.write(w, status, contentType, body)
	return nil
}
