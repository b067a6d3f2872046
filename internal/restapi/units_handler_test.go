package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsHandler(t *testing.T) {
	for _, endpoint := range []string{"/api/units/weight?key=TEST", "/api/units/weight.json?key=TEST"} {
		t.Run(endpoint, func(t *testing.T) {
			_, resp, model := serveAndRetrieveEndpoint(t, endpoint)

			require.Equal(t, http.StatusOK, resp.StatusCode)
			entry := entryOf(t, model)

			assert.Equal(t, "weight", entry["category"])
			assert.Equal(t, []interface{}{"Kilogram", "Gram", "Milligram", "Metric Ton", "Pound", "Ounce"}, entry["units"])
			assert.Equal(t, "Kilogram", entry["defaultFrom"])
			assert.Equal(t, "Gram", entry["defaultTo"])
		})
	}
}

func TestUnitsHandlerUnknownCategory(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/units/time?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Equal(t, "resource not found", model.Text)
}
