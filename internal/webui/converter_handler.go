package webui

import (
	"net/http"
	"net/url"
	"slices"

	"unitconv.dev/internal/conversion"
	"unitconv.dev/internal/logging"
	"unitconv.dev/internal/state"
	"unitconv.dev/internal/utils"
)

type categoryTab struct {
	Name   string
	Label  string
	Href   string
	Active bool
}

type converterPage struct {
	Tabs    []categoryTab
	State   *state.Converter
	Units   []string
	OK      bool
	Outcome string
	Result  string
}

// converterFromQuery rebuilds the converter state of a page from its query
// string and applies the requested action.
//
// A from unit that differs from last_from is a change of the source unit and
// goes through SetFromUnit, so the target unit moves away from it. A to unit
// is taken as is.
func converterFromQuery(engine *conversion.Engine, query url.Values) *state.Converter {
	c := state.NewConverter(engine)

	category := utils.SanitizeInput(query.Get("category"))
	if category != "" {
		c.SetCategory(category)
	}

	action := query.Get("action")
	if action != "category" {
		units := c.AvailableUnits()

		if to := query.Get("to"); slices.Contains(units, to) {
			c.SetToUnit(to)
		}
		if from := query.Get("from"); slices.Contains(units, from) {
			if lastFrom := query.Get("last_from"); lastFrom != "" && lastFrom != from {
				c.SetFromUnit(from)
			} else {
				c.FromUnit = from
			}
		}
	}

	if query.Has("value") {
		c.SetInput(query.Get("value"))
	}

	switch action {
	case "swap":
		c.SwapUnits()
	case "clear":
		c.ClearInput()
	}

	return c
}

func categoryTabs(engine *conversion.Engine, current, input string) []categoryTab {
	names := engine.Table().CategoryNames()
	tabs := make([]categoryTab, 0, len(names))
	for _, name := range names {
		q := url.Values{}
		q.Set("category", name)
		q.Set("action", "category")
		q.Set("value", input)
		tabs = append(tabs, categoryTab{
			Name:   name,
			Label:  utils.CategoryLabel(name),
			Href:   "/?" + q.Encode(),
			Active: name == current,
		})
	}
	return tabs
}

func (webUI *WebUI) converterHandler(w http.ResponseWriter, r *http.Request) {
	c := converterFromQuery(webUI.Engine, r.URL.Query())
	out := c.Result()

	logging.LogConversion(logging.FromContext(r.Context()), c.Category, c.FromUnit, c.ToUnit, out.Kind.String())

	page := converterPage{
		Tabs:    categoryTabs(webUI.Engine, c.Category, c.Input),
		State:   c,
		Units:   c.AvailableUnits(),
		OK:      out.OK(),
		Outcome: out.Kind.String(),
		Result:  out.Message(),
	}
	webUI.render(w, r, "converter.html", page)
}
