package dashboard

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// echart is the subset of go-echarts chart behaviour the renderer needs.
type echart interface {
	Validate()
	JSON() map[string]interface{}
	Render(w io.Writer) error
}

// Renderer turns chart specs into go-echarts charts.
type Renderer struct {
	// AssetsHost is the URL prefix echarts.min.js is served from. Empty
	// means the go-echarts default.
	AssetsHost string
}

func (r Renderer) init(title string) opts.Initialization {
	return opts.Initialization{
		PageTitle:  title,
		Width:      "100%",
		Height:     "480px",
		AssetsHost: r.AssetsHost,
	}
}

// Pie builds a go-echarts pie chart from spec.
func (r Renderer) Pie(spec ChartSpec) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(r.init(spec.Title)),
		charts.WithTitleOpts(opts.Title{Title: spec.Title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	items := make([]opts.PieData, 0, len(spec.Slices))
	for _, s := range spec.Slices {
		items = append(items, opts.PieData{Name: s.Name, Value: s.Value})
	}
	pie.AddSeries("launches", items,
		charts.WithPieChartOpts(opts.PieChart{Radius: "60%"}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c} ({d}%)"}),
	)
	return pie
}

// Scatter builds a go-echarts scatter chart from spec, one series per
// booster version category.
func (r Renderer) Scatter(spec ChartSpec) *charts.Scatter {
	xAxis := opts.XAxis{Type: "value", NameLocation: "middle", NameGap: 25}
	yAxis := opts.YAxis{Type: "value", NameLocation: "middle", NameGap: 30}
	if spec.XAxis != nil {
		xAxis.Name = spec.XAxis.Name
		if spec.XAxis.Min != nil {
			xAxis.Min = *spec.XAxis.Min
		}
		if spec.XAxis.Max != nil {
			xAxis.Max = *spec.XAxis.Max
		}
	}
	if spec.YAxis != nil {
		yAxis.Name = spec.YAxis.Name
		if spec.YAxis.Min != nil {
			yAxis.Min = *spec.YAxis.Min
		}
		if spec.YAxis.Max != nil {
			yAxis.Max = *spec.YAxis.Max
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(r.init(spec.Title)),
		charts.WithTitleOpts(opts.Title{Title: spec.Title, Subtitle: fmt.Sprintf("points=%d", spec.PointCount()), Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
	)

	if len(spec.Series) == 0 {
		// ECharts rejects a null series list, so an empty selection still
		// gets one series with no data.
		scatter.AddSeries("no launches", []opts.ScatterData{})
		return scatter
	}

	for _, s := range spec.Series {
		data := make([]opts.ScatterData, 0, len(s.Points))
		for _, p := range s.Points {
			data = append(data, opts.ScatterData{
				Name:  p.BoosterVersion,
				Value: []interface{}{p.PayloadMassKg, p.Class},
			})
		}
		scatter.AddSeries(s.Name, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))
	}
	return scatter
}

func (r Renderer) chart(spec ChartSpec) (echart, error) {
	switch spec.Kind {
	case KindPie:
		return r.Pie(spec), nil
	case KindScatter:
		return r.Scatter(spec), nil
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}
}

// Option returns the ECharts option object for spec, ready to be passed to
// setOption in the browser.
func (r Renderer) Option(spec ChartSpec) (map[string]interface{}, error) {
	c, err := r.chart(spec)
	if err != nil {
		return nil, err
	}
	c.Validate()
	return c.JSON(), nil
}

// RenderHTML writes a standalone HTML page showing spec.
func (r Renderer) RenderHTML(w io.Writer, spec ChartSpec) error {
	c, err := r.chart(spec)
	if err != nil {
		return err
	}
	if err := c.Render(w); err != nil {
		return fmt.Errorf("render %s chart: %w", spec.Kind, err)
	}
	return nil
}
