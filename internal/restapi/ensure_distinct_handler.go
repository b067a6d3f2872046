package restapi

import (
	"net/http"

	"unitconv.dev/internal/models"
	"unitconv.dev/internal/utils"
)

// ensureDistinctHandler answers which target unit to use after the source
// unit changed to ?selected while the target was ?other.
func (api *RestAPI) ensureDistinctHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	category := utils.SanitizeInput(query.Get("category"))
	selected := utils.SanitizeInput(query.Get("selected"))
	other := utils.SanitizeInput(query.Get("other"))

	fieldErrors := utils.ValidateCategory(api.Engine, "category", category)
	if len(fieldErrors) == 0 {
		fieldErrors = utils.ValidateUnits(api.Engine, category, map[string]string{"selected": selected, "other": other}, fieldErrors)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	entry := models.DistinctUnitEntry{
		Category: category,
		Selected: selected,
		Unit:     api.Engine.EnsureDistinct(selected, other, category),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
