package dashboard

import "github.com/launchrecords/launchdash/internal/launches"

// SiteCount pairs a launch site with its number of successful launches.
type SiteCount struct {
	Site  string `json:"site"`
	Count int    `json:"count"`
}

// OutcomeCount pairs an outcome label with its number of launches.
type OutcomeCount struct {
	Outcome string `json:"outcome"`
	Count   int    `json:"count"`
}

// SiteSuccessDistribution counts successful launches per site. Sites appear
// in order of their first successful launch; sites without any success are
// omitted.
func SiteSuccessDistribution(records []launches.Record) []SiteCount {
	out := []SiteCount{}
	pos := make(map[string]int)
	for _, rec := range records {
		if rec.Class != launches.Success {
			continue
		}
		i, ok := pos[rec.LaunchSite]
		if !ok {
			i = len(out)
			pos[rec.LaunchSite] = i
			out = append(out, SiteCount{Site: rec.LaunchSite})
		}
		out[i].Count++
	}
	return out
}

// OutcomeDistribution counts successes and failures at site. An outcome with
// no launches is left out rather than reported as zero.
func OutcomeDistribution(records []launches.Record, site string) []OutcomeCount {
	var successes, failures int
	for _, rec := range launches.FilterBySite(records, site) {
		if rec.Class == launches.Success {
			successes++
		} else {
			failures++
		}
	}

	out := []OutcomeCount{}
	if successes > 0 {
		out = append(out, OutcomeCount{Outcome: launches.Success.Label(), Count: successes})
	}
	if failures > 0 {
		out = append(out, OutcomeCount{Outcome: launches.Failure.Label(), Count: failures})
	}
	return out
}
