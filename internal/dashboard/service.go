// Package dashboard turns the launch dataset into chart specifications for
// the site dropdown and payload slider.
package dashboard

import (
	"fmt"

	"github.com/launchrecords/launchdash/internal/launches"
)

const (
	TitleSuccessesBySite = "Successes by Launch Site"
	titleSuccessRateFmt  = "Success Rate for %s"
	TitlePayloadScatter  = "Correlation between Payload and Success"

	AxisPayloadMass = "Payload Mass (kg)"
	AxisClass       = "class"
)

// Slider domain of the payload range control.
const (
	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
	SliderMark = 2500
)

// PayloadRange is the closed interval selected on the payload slider.
type PayloadRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Service computes chart specs over an immutable dataset. All methods are
// pure functions of their arguments and the dataset.
type Service struct {
	dataset *launches.Dataset
}

func NewService(dataset *launches.Dataset) *Service {
	return &Service{dataset: dataset}
}

// Dataset returns the dataset the service reads.
func (s *Service) Dataset() *launches.Dataset {
	return s.dataset
}

// DefaultPayloadRange spans the lightest to the heaviest payload.
func (s *Service) DefaultPayloadRange() PayloadRange {
	minKg, maxKg := s.dataset.PayloadBounds()
	return PayloadRange{Min: minKg, Max: maxKg}
}

// SuccessRateTitle is the pie chart title for a single site.
func SuccessRateTitle(site string) string {
	return fmt.Sprintf(titleSuccessRateFmt, site)
}

// PieChart shows successes per site for AllSites, or the success/failure
// split of a single site.
func (s *Service) PieChart(site string) ChartSpec {
	records := s.dataset.Records()

	if site == launches.AllSites {
		spec := ChartSpec{Kind: KindPie, Title: TitleSuccessesBySite, Slices: []Slice{}}
		for _, sc := range SiteSuccessDistribution(records) {
			spec.Slices = append(spec.Slices, Slice{Name: sc.Site, Value: sc.Count})
		}
		return spec
	}

	spec := ChartSpec{Kind: KindPie, Title: SuccessRateTitle(site), Slices: []Slice{}}
	for _, oc := range OutcomeDistribution(records, site) {
		spec.Slices = append(spec.Slices, Slice{Name: oc.Outcome, Value: oc.Count})
	}
	return spec
}

// ScatterChart plots payload mass against outcome for the launches inside r,
// restricted to site unless it is AllSites. Points are grouped into one
// series per booster version category.
func (s *Service) ScatterChart(site string, r PayloadRange) ChartSpec {
	subset := launches.FilterByPayloadRange(s.dataset.Records(), r.Min, r.Max)
	if site != launches.AllSites {
		subset = launches.FilterBySite(subset, site)
	}

	spec := ChartSpec{
		Kind:   KindScatter,
		Title:  TitlePayloadScatter,
		Series: []Series{},
		XAxis:  &Axis{Name: AxisPayloadMass},
		YAxis:  &Axis{Name: AxisClass, Min: float64Ptr(0), Max: float64Ptr(1)},
	}
	if r.Min <= r.Max {
		spec.XAxis.Min = float64Ptr(r.Min)
		spec.XAxis.Max = float64Ptr(r.Max)
	}

	pos := make(map[string]int)
	for _, rec := range subset {
		i, ok := pos[rec.BoosterVersionCategory]
		if !ok {
			i = len(spec.Series)
			pos[rec.BoosterVersionCategory] = i
			spec.Series = append(spec.Series, Series{Name: rec.BoosterVersionCategory, Points: []Point{}})
		}
		spec.Series[i].Points = append(spec.Series[i].Points, Point{
			PayloadMassKg:  rec.PayloadMassKg,
			Class:          int(rec.Class),
			LaunchSite:     rec.LaunchSite,
			BoosterVersion: rec.BoosterVersion,
			FlightNumber:   rec.FlightNumber,
		})
	}
	return spec
}

func float64Ptr(v float64) *float64 {
	return &v
}
