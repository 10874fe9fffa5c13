package dashboard

import (
	"reflect"
	"testing"

	"github.com/hausenergie/energymon/internal/repository"
)

func series(vals ...float64) []repository.TimeValue {
	out := make([]repository.TimeValue, len(vals))
	for i, v := range vals {
		out[i] = repository.TimeValue{Time: "t", Value: v}
	}
	return out
}

func TestMergeHourlyAligned(t *testing.T) {
	totals := []repository.TimeValue{
		{Time: "00:00", Value: 1},
		{Time: "01:00", Value: 2},
	}
	kitchen := series(0.5, 0.6)
	living := series(0.3, 0.4)
	bedroom := series(0.2, 0.1)

	got := MergeHourly(totals, kitchen, living, bedroom)
	want := []MergedRecord{
		{Time: "00:00", Value: 1, Kitchen: 0.5, Living: 0.3, Bedroom: 0.2},
		{Time: "01:00", Value: 2, Kitchen: 0.6, Living: 0.4, Bedroom: 0.1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeHourly = %+v, want %+v", got, want)
	}
}

func TestMergeHourlyShorterSeriesZeroFill(t *testing.T) {
	totals := []repository.TimeValue{
		{Time: "00:00", Value: 1},
		{Time: "01:00", Value: 2},
		{Time: "02:00", Value: 3},
	}
	// Kitchen has one point, living none; missing indexes read as zero.
	got := MergeHourly(totals, series(0.5), nil, series(0.2, 0.1))

	if len(got) != len(totals) {
		t.Fatalf("result length = %d, want %d", len(got), len(totals))
	}
	if got[1].Kitchen != 0 || got[2].Kitchen != 0 {
		t.Errorf("kitchen beyond series end = %v/%v, want 0/0", got[1].Kitchen, got[2].Kitchen)
	}
	if got[0].Living != 0 {
		t.Errorf("living with nil series = %v, want 0", got[0].Living)
	}
	if got[1].Bedroom != 0.1 || got[2].Bedroom != 0 {
		t.Errorf("bedroom = %v/%v, want 0.1/0", got[1].Bedroom, got[2].Bedroom)
	}
}

func TestMergeHourlyTotalsAuthoritative(t *testing.T) {
	// Auxiliary series longer than totals never extend the result.
	got := MergeHourly(series(1), series(9, 9, 9), series(8, 8), series(7, 7))
	if len(got) != 1 {
		t.Fatalf("result length = %d, want 1", len(got))
	}
}

func TestMergeHourlyEmptyTotals(t *testing.T) {
	got := MergeHourly(nil, series(1), series(2), series(3))
	if len(got) != 0 {
		t.Errorf("result length = %d, want 0", len(got))
	}
}
