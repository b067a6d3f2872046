package restapi

import (
	"net/http"
	"time"

	"unitconv.dev/internal/models"
)

func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	categories := api.Engine.Table().Categories()

	units := 0
	for _, c := range categories {
		units += len(c.Units)
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewStatus(time.Now(), len(categories), units)))
}
