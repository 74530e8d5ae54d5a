package Controllers

import (
	"TravelPro/Models"
	"testing"
	"time"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestBuildDailyOverviewZeroFill(t *testing.T) {
	end := day(t, "2026-08-31")

	overview := buildDailyOverview(nil, end)
	if len(overview) != 7 {
		t.Fatalf("len(overview) = %d, want 7", len(overview))
	}
	if overview[0].Date != "2026-08-25" {
		t.Errorf("first entry = %s, want 2026-08-25", overview[0].Date)
	}
	if overview[6].Date != "2026-08-31" {
		t.Errorf("last entry = %s, want 2026-08-31", overview[6].Date)
	}
	for _, stat := range overview {
		if stat.Count != 0 || stat.Total != 0 {
			t.Errorf("entry %s not zero-filled: %+v", stat.Date, stat)
		}
	}
}

func TestBuildDailyOverviewBuckets(t *testing.T) {
	end := day(t, "2026-08-31")
	sales := []Models.Sale{
		{CreationDate: day(t, "2026-08-31"), TotalCost: 100},
		{CreationDate: day(t, "2026-08-31"), TotalCost: 50},
		{CreationDate: day(t, "2026-08-27"), TotalCost: 200},
		// Outside the window, must be ignored.
		{CreationDate: day(t, "2026-08-20"), TotalCost: 999},
	}

	overview := buildDailyOverview(sales, end)
	if len(overview) != 7 {
		t.Fatalf("len(overview) = %d, want 7", len(overview))
	}

	byDate := make(map[string]DailyStat)
	for _, stat := range overview {
		byDate[stat.Date] = stat
	}

	if got := byDate["2026-08-31"]; got.Count != 2 || got.Total != 150 {
		t.Errorf("2026-08-31 = %+v, want count 2 total 150", got)
	}
	if got := byDate["2026-08-27"]; got.Count != 1 || got.Total != 200 {
		t.Errorf("2026-08-27 = %+v, want count 1 total 200", got)
	}
	if got := byDate["2026-08-25"]; got.Count != 0 {
		t.Errorf("2026-08-25 = %+v, want zero", got)
	}

	// Chronological order regardless of data.
	for i := 1; i < len(overview); i++ {
		if overview[i-1].Date >= overview[i].Date {
			t.Errorf("entries out of order: %s before %s", overview[i-1].Date, overview[i].Date)
		}
	}
}
