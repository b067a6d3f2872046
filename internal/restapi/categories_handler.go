package restapi

import (
	"net/http"

	"unitconv.dev/internal/models"
	"unitconv.dev/internal/utils"
)

func (api *RestAPI) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories := api.Engine.Table().Categories()

	list := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		list = append(list, models.NewCategory(c, utils.CategoryLabel(c.Name)))
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}
