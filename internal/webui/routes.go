package webui

import "net/http"

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.Handle("GET /{$}", pageHeaders(http.HandlerFunc(webUI.converterHandler)))
	mux.Handle("GET /counter", pageHeaders(http.HandlerFunc(webUI.counterHandler)))
	mux.Handle("GET /debug/", pageHeaders(http.HandlerFunc(webUI.debugIndexHandler)))
}
