package dashboard

// ChartKind selects how a ChartSpec is drawn.
type ChartKind string

const (
	KindPie     ChartKind = "pie"
	KindScatter ChartKind = "scatter"
)

// Slice is one wedge of a pie chart.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Point is one launch on the scatter chart.
type Point struct {
	PayloadMassKg  float64 `json:"payloadMassKg"`
	Class          int     `json:"class"`
	LaunchSite     string  `json:"launchSite"`
	BoosterVersion string  `json:"boosterVersion,omitempty"`
	FlightNumber   int     `json:"flightNumber,omitempty"`
}

// Series groups the points of one booster version category; the category
// drives the point color.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// ChartSpec is the renderer-independent description of a chart.
type ChartSpec struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	Slices []Slice   `json:"slices,omitempty"`
	Series []Series  `json:"series,omitempty"`
	XAxis  *Axis     `json:"xAxis,omitempty"`
	YAxis  *Axis     `json:"yAxis,omitempty"`
}

// Axis describes a value axis.
type Axis struct {
	Name string   `json:"name"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
}

// PointCount returns the number of scatter points across all series.
func (c ChartSpec) PointCount() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}

// SliceTotal returns the sum of all pie slices.
func (c ChartSpec) SliceTotal() int {
	n := 0
	for _, s := range c.Slices {
		n += s.Value
	}
	return n
}
