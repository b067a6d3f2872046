package restapi

import (
	"net/http"

	"unitconv.dev/internal/models"
	"unitconv.dev/internal/utils"
)

func (api *RestAPI) unitsHandler(w http.ResponseWriter, r *http.Request) {
	category := utils.ExtractParam(r, "category")

	if err := utils.ValidateName(category); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"category": {"category " + err.Error()},
		})
		return
	}

	sel, ok := api.Engine.DefaultSelection(category)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	entry := models.NewUnitsEntry(category, api.Engine.ListUnits(category), sel)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
