package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/launchrecords/launchdash/internal/dashboard"
	"github.com/launchrecords/launchdash/internal/launches"
	"github.com/launchrecords/launchdash/internal/logging"
	"github.com/launchrecords/launchdash/internal/reactive"
)

//go:embed dashboard.html debug_index.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "dashboard.html", "debug_index.html"))

const pageHeading = "SpaceX Launch Records Dashboard"

type chartRegion struct {
	ID     string
	Option map[string]interface{}
}

type sliderData struct {
	Min   int
	Max   int
	Step  int
	Marks []int
	Value [2]float64
}

type dashboardData struct {
	Heading      string
	EChartsJS    string
	Sites        []launches.Site
	DefaultSite  string
	Slider       sliderData
	Charts       []chartRegion
	SiteInput    reactive.InputID
	PayloadInput reactive.InputID
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	update, err := webUI.Bindings.Initial(webUI.Dashboard.DefaultValues())
	if err != nil {
		webUI.serverError(w, r, err)
		return
	}

	data := dashboardData{
		Heading:      pageHeading,
		EChartsJS:    webUI.echartsScript(),
		Sites:        webUI.Dataset.SiteOptions(),
		DefaultSite:  launches.AllSites,
		Slider:       webUI.slider(),
		SiteInput:    dashboard.InputSiteDropdown,
		PayloadInput: dashboard.InputPayloadSlider,
	}

	for _, res := range update.Results {
		spec, ok := res.Value.(dashboard.ChartSpec)
		if !ok {
			continue
		}
		option, err := webUI.Renderer.Option(spec)
		if err != nil {
			webUI.serverError(w, r, err)
			return
		}
		data.Charts = append(data.Charts, chartRegion{ID: string(res.Output), Option: option})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", webUI.pagePolicy())
	if err := templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render dashboard page", err)
	}
}

func (webUI *WebUI) slider() sliderData {
	initial := webUI.Dashboard.DefaultPayloadRange()
	s := sliderData{
		Min:   dashboard.SliderMin,
		Max:   dashboard.SliderMax,
		Step:  dashboard.SliderStep,
		Value: [2]float64{initial.Min, initial.Max},
	}
	for v := dashboard.SliderMin; v <= dashboard.SliderMax; v += dashboard.SliderMark {
		s.Marks = append(s.Marks, v)
	}
	return s
}

func (webUI *WebUI) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
