package restapi

import (
	"log/slog"
	"net/http"

	"unitconv.dev/internal/conversion"
	"unitconv.dev/internal/logging"
	"unitconv.dev/internal/models"
	"unitconv.dev/internal/utils"
)

// convertHandler converts ?value from ?from to ?to within ?category. Unknown
// categories and units are request errors; a value that is not a number is a
// regular outcome and answered with 200.
func (api *RestAPI) convertHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	category := utils.SanitizeInput(query.Get("category"))
	from := utils.SanitizeInput(query.Get("from"))
	to := utils.SanitizeInput(query.Get("to"))
	value := query.Get("value")

	fieldErrors := utils.ValidateCategory(api.Engine, "category", category)
	if len(fieldErrors) == 0 {
		fieldErrors = utils.ValidateUnits(api.Engine, category, map[string]string{"from": from, "to": to}, fieldErrors)
	}
	if err := utils.ValidateValue(value); err != nil {
		fieldErrors["value"] = append(fieldErrors["value"], "value "+err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	out := api.Engine.Convert(category, from, to, value)

	logger := logging.FromContext(r.Context())
	logging.LogConversion(logger, category, from, to, out.Kind.String(), slog.String("input", value))
	if out.Kind == conversion.OutcomeInternalError {
		logging.LogError(logger, "conversion failed", out.Err(),
			slog.String("category", category),
			slog.String("from", from),
			slog.String("to", to),
			slog.String("component", "conversion"))
	}

	entry := models.NewConversionEntry(category, from, to, value, out)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
