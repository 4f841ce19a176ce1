package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchrecords/launchdash/internal/launches"
)

func TestSiteSuccessDistribution(t *testing.T) {
	records := []launches.Record{
		{LaunchSite: "B", Class: launches.Failure},
		{LaunchSite: "A", Class: launches.Success},
		{LaunchSite: "B", Class: launches.Success},
		{LaunchSite: "A", Class: launches.Success},
		{LaunchSite: "C", Class: launches.Failure},
	}

	got := SiteSuccessDistribution(records)
	assert.Equal(t, []SiteCount{{Site: "A", Count: 2}, {Site: "B", Count: 1}}, got)

	t.Run("labels stay paired when input order changes", func(t *testing.T) {
		reversed := make([]launches.Record, len(records))
		for i := range records {
			reversed[len(records)-1-i] = records[i]
		}
		counts := map[string]int{}
		for _, sc := range SiteSuccessDistribution(reversed) {
			counts[sc.Site] = sc.Count
		}
		assert.Equal(t, map[string]int{"A": 2, "B": 1}, counts)
	})

	t.Run("no successes", func(t *testing.T) {
		got := SiteSuccessDistribution(records[4:])
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestOutcomeDistribution(t *testing.T) {
	records := []launches.Record{
		{LaunchSite: "A", Class: launches.Success},
		{LaunchSite: "A", Class: launches.Failure},
		{LaunchSite: "A", Class: launches.Failure},
		{LaunchSite: "S", Class: launches.Success},
		{LaunchSite: "F", Class: launches.Failure},
	}

	testCases := []struct {
		site string
		want []OutcomeCount
	}{
		{"A", []OutcomeCount{{Outcome: "success", Count: 1}, {Outcome: "failure", Count: 2}}},
		{"S", []OutcomeCount{{Outcome: "success", Count: 1}}},
		{"F", []OutcomeCount{{Outcome: "failure", Count: 1}}},
		{"missing", []OutcomeCount{}},
	}

	for _, tc := range testCases {
		t.Run(tc.site, func(t *testing.T) {
			got := OutcomeDistribution(records, tc.site)
			assert.Equal(t, tc.want, got)

			total := 0
			for _, oc := range got {
				assert.Contains(t, []string{"success", "failure"}, oc.Outcome)
				total += oc.Count
			}
			assert.LessOrEqual(t, total, len(launches.FilterBySite(records, tc.site)))
		})
	}
}
