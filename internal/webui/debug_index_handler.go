package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; frame-ancestors 'none';")

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err := templates.ExecuteTemplate(w, "debug_index.html", dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "summary":
		data = webUI.Dataset.Summary()
		title = "Launch Data - Summary"
	case "sites":
		data = webUI.Dataset.SiteOptions()
		title = "Launch Data - Sites"
	case "records":
		data = webUI.Dataset.Records()
		title = "Launch Data - Records"
	case "columns":
		data = webUI.Dataset.Columns()
		title = "Launch Data - Columns"
	case "column":
		name := r.URL.Query().Get("name")
		values, err := webUI.Dataset.Column(name)
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = values
		}
		title = "Launch Data - Column " + name
	default:
		data = map[string]string{
			"error": "Please use one of the following: summary, sites, records, columns, column&name=<column>.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
