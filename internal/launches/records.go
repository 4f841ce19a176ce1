package launches

// AllSites is the site selection that applies no site filter.
const AllSites = "ALL"

// Column headers of the launch data source.
const (
	ColumnFlightNumber           = "Flight Number"
	ColumnLaunchSite             = "Launch Site"
	ColumnClass                  = "class"
	ColumnPayloadMass            = "Payload Mass (kg)"
	ColumnBoosterVersion         = "Booster Version"
	ColumnBoosterVersionCategory = "Booster Version Category"
)

// RequiredColumns must be present in every data source.
var RequiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterVersionCategory,
}

// OptionalColumns are read when present.
var OptionalColumns = []string{
	ColumnFlightNumber,
	ColumnBoosterVersion,
}

// OutcomeClass is the binary launch result.
type OutcomeClass int

const (
	Failure OutcomeClass = 0
	Success OutcomeClass = 1
)

// Label returns "success" or "failure".
func (c OutcomeClass) Label() string {
	if c == Success {
		return "success"
	}
	return "failure"
}

// Record is one launch row.
type Record struct {
	FlightNumber           int          `json:"flightNumber,omitempty"`
	LaunchSite             string       `json:"launchSite"`
	PayloadMassKg          float64      `json:"payloadMassKg"`
	Class                  OutcomeClass `json:"class"`
	BoosterVersion         string       `json:"boosterVersion,omitempty"`
	BoosterVersionCategory string       `json:"boosterVersionCategory"`
}

// Site is a dropdown option.
type Site struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var siteLabels = map[string]string{
	"CCAFS LC-40":  "Cape Canaveral Launch Site 40",
	"VAFB SLC-4E":  "Vandenberg Space Launch Complex 4E",
	"KSC LC-39A":   "Kennedy Launch Complex 39A",
	"CCAFS SLC-40": "Cape Canaveral Space Launch Complex 40",
}

// SiteLabel returns the human readable name of a launch site, falling back to
// the site code itself.
func SiteLabel(site string) string {
	if site == AllSites {
		return "All Sites"
	}
	if label, ok := siteLabels[site]; ok {
		return label
	}
	return site
}
