package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, title string, data interface{}) {
	webUI.render(w, r, "debug_index.html", debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dataType := query.Get("dataType")

	var data interface{}
	var title string

	table := webUI.Engine.Table()

	switch dataType {
	case "categories":
		data = table.Categories()
		title = "Conversion Table - Categories"
	case "names":
		data = table.CategoryNames()
		title = "Conversion Table - Category Names"
	case "units":
		category := query.Get("category")
		units := webUI.Engine.ListUnits(category)
		if units == nil {
			data = map[string]string{"error": "Unknown category: " + category}
		} else {
			data = units
		}
		title = "Conversion Table - Units of " + category
	default:
		data = map[string]string{
			"error": "Please use one of the following: categories, names, units (with category).",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, title, data)
}
