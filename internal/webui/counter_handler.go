package webui

import (
	"net/http"
	"strconv"

	"unitconv.dev/internal/state"
)

func (webUI *WebUI) counterHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var counter state.Counter
	if n, err := strconv.Atoi(query.Get("count")); err == nil {
		counter.Count = n
	}

	switch query.Get("action") {
	case "increment":
		counter.Increment()
	case "decrement":
		counter.Decrement()
	}

	webUI.render(w, r, "counter.html", counter)
}
