package launches

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrEmptyDataset       = errors.New("dataset has no records")
	ErrMissingColumn      = errors.New("missing required column")
	ErrMalformedValue     = errors.New("malformed value")
	ErrUnsupportedSource  = errors.New("unsupported data source")
	ErrUnknownColumn      = errors.New("unknown column")
	errInvalidLaunchSite  = errors.New("launch site is empty")
	errNegativePayload    = errors.New("payload mass is negative")
	errInvalidOutcomeCode = errors.New("class must be 0 or 1")
)

// Dataset is the immutable launch table. It is built once at startup and
// shared read-only by every request.
type Dataset struct {
	source     string
	records    []Record
	sites      []string
	minPayload float64
	maxPayload float64
	loadedAt   time.Time
}

// Summary describes a loaded dataset.
type Summary struct {
	Source     string    `json:"source"`
	Records    int       `json:"records"`
	Successes  int       `json:"successes"`
	Sites      []string  `json:"sites"`
	MinPayload float64   `json:"minPayloadKg"`
	MaxPayload float64   `json:"maxPayloadKg"`
	LoadedAt   time.Time `json:"loadedAt"`
}

// NewDataset validates records and freezes them into a Dataset. The slice is
// copied so later changes by the caller are not observed.
func NewDataset(source string, records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyDataset)
	}

	ds := &Dataset{
		source:     source,
		records:    make([]Record, len(records)),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
		loadedAt:   time.Now(),
	}
	copy(ds.records, records)

	seen := make(map[string]bool)
	for i, rec := range ds.records {
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", source, i+1, err)
		}
		if !seen[rec.LaunchSite] {
			seen[rec.LaunchSite] = true
			ds.sites = append(ds.sites, rec.LaunchSite)
		}
		ds.minPayload = math.Min(ds.minPayload, rec.PayloadMassKg)
		ds.maxPayload = math.Max(ds.maxPayload, rec.PayloadMassKg)
	}

	return ds, nil
}

func validateRecord(rec Record) error {
	switch {
	case rec.LaunchSite == "":
		return errInvalidLaunchSite
	case math.IsNaN(rec.PayloadMassKg) || rec.PayloadMassKg < 0:
		return errNegativePayload
	case rec.Class != Success && rec.Class != Failure:
		return errInvalidOutcomeCode
	}
	return nil
}

// Source returns the path the dataset was loaded from.
func (ds *Dataset) Source() string {
	return ds.source
}

// Len returns the number of records.
func (ds *Dataset) Len() int {
	return len(ds.records)
}

// Records returns a copy of all records in load order.
func (ds *Dataset) Records() []Record {
	out := make([]Record, len(ds.records))
	copy(out, ds.records)
	return out
}

// Sites returns the distinct launch sites in order of first appearance.
func (ds *Dataset) Sites() []string {
	out := make([]string, len(ds.sites))
	copy(out, ds.sites)
	return out
}

// SiteOptions returns the dropdown options: "All Sites" followed by every
// site in the dataset.
func (ds *Dataset) SiteOptions() []Site {
	options := make([]Site, 0, len(ds.sites)+1)
	options = append(options, Site{Label: SiteLabel(AllSites), Value: AllSites})
	for _, site := range ds.sites {
		options = append(options, Site{Label: SiteLabel(site), Value: site})
	}
	return options
}

// HasSite reports whether any record was launched from site.
func (ds *Dataset) HasSite(site string) bool {
	for _, s := range ds.sites {
		if s == site {
			return true
		}
	}
	return false
}

// PayloadBounds returns the smallest and largest payload mass in the dataset.
func (ds *Dataset) PayloadBounds() (float64, float64) {
	return ds.minPayload, ds.maxPayload
}

// Columns lists the column names available through Column.
func (ds *Dataset) Columns() []string {
	return []string{
		ColumnFlightNumber,
		ColumnLaunchSite,
		ColumnClass,
		ColumnPayloadMass,
		ColumnBoosterVersion,
		ColumnBoosterVersionCategory,
	}
}

// Column returns every value of the named column in record order.
func (ds *Dataset) Column(name string) ([]any, error) {
	values := make([]any, len(ds.records))
	for i, rec := range ds.records {
		switch name {
		case ColumnFlightNumber:
			values[i] = rec.FlightNumber
		case ColumnLaunchSite:
			values[i] = rec.LaunchSite
		case ColumnClass:
			values[i] = int(rec.Class)
		case ColumnPayloadMass:
			values[i] = rec.PayloadMassKg
		case ColumnBoosterVersion:
			values[i] = rec.BoosterVersion
		case ColumnBoosterVersionCategory:
			values[i] = rec.BoosterVersionCategory
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
	}
	return values, nil
}

// Summary returns headline statistics for logging and the debug page.
func (ds *Dataset) Summary() Summary {
	successes := 0
	for _, rec := range ds.records {
		if rec.Class == Success {
			successes++
		}
	}
	return Summary{
		Source:     ds.source,
		Records:    len(ds.records),
		Successes:  successes,
		Sites:      ds.Sites(),
		MinPayload: ds.minPayload,
		MaxPayload: ds.maxPayload,
		LoadedAt:   ds.loadedAt,
	}
}
