package services

import (
	"reflect"
	"testing"

	"fuel-route-service/internal/domain"
)

// Route points spaced half a degree of latitude apart (~34.5 miles per
// step) heading due north along a meridian.
func routePoints(startLat float64, count int) []domain.Coordinates {
	points := make([]domain.Coordinates, count)
	for i := range points {
		points[i] = domain.Coordinates{Lat: startLat + 0.5*float64(i), Lon: -100}
	}
	return points
}

func stopAt(name string, lat, price float64) domain.FuelStop {
	return domain.FuelStop{
		Name:        name,
		Address:     "123 Test Rd",
		City:        "Testville",
		State:       "TX",
		Price:       price,
		Coordinates: domain.Coordinates{Lat: lat, Lon: -100.001},
	}
}

func TestSelectFuelStopsSingleSegment(t *testing.T) {
	// ~518 miles of route, one 500-mile segment, three candidate stops.
	points := routePoints(30, 16)
	stops := []domain.FuelStop{
		stopAt("A", 31, 3.50),
		stopAt("B", 33, 3.20),
		stopAt("C", 35, 3.80),
	}

	selected := SelectFuelStops(points, stops, DefaultSelectOptions())

	if len(selected) != 1 {
		t.Fatalf("expected 1 selected stop, got %d", len(selected))
	}
	if selected[0].Name != "B" || selected[0].Price != 3.20 {
		t.Fatalf("selected %q at %v, want B at 3.20", selected[0].Name, selected[0].Price)
	}
}

func TestSelectFuelStopsEmptyMiddleSegment(t *testing.T) {
	// ~1208 miles. The second 500-mile window holds no eligible stop, so
	// it contributes nothing and the window keeps extending until the
	// next candidate appears.
	points := routePoints(30, 36)
	stops := []domain.FuelStop{
		stopAt("first", 33, 3.50),
		stopAt("last", 46, 3.90),
	}

	selected := SelectFuelStops(points, stops, DefaultSelectOptions())

	if len(selected) != 2 {
		t.Fatalf("expected 2 selected stops, got %d", len(selected))
	}
	if selected[0].Name != "first" || selected[1].Name != "last" {
		t.Fatalf("selected %q then %q, want first then last", selected[0].Name, selected[1].Name)
	}
}

func TestSelectFuelStopsTrailingSegment(t *testing.T) {
	// ~173 miles: the interval never closes.
	points := routePoints(30, 6)
	stops := []domain.FuelStop{stopAt("only", 31, 3.10)}

	opts := DefaultSelectOptions()
	opts.FlushTrailing = true
	if got := SelectFuelStops(points, stops, opts); len(got) != 1 || got[0].Name != "only" {
		t.Fatalf("flush enabled: got %v, want the trailing stop", got)
	}

	opts.FlushTrailing = false
	if got := SelectFuelStops(points, stops, opts); len(got) != 0 {
		t.Fatalf("flush disabled: got %v, want no stops", got)
	}
}

func TestSelectFuelStopsTieBreak(t *testing.T) {
	points := routePoints(30, 16)
	// Equal minimum prices: the stop earlier in catalog order wins.
	stops := []domain.FuelStop{
		stopAt("expensive", 31, 3.60),
		stopAt("cheap-early", 33, 3.20),
		stopAt("cheap-late", 33.0001, 3.20),
	}

	selected := SelectFuelStops(points, stops, DefaultSelectOptions())

	if len(selected) != 1 {
		t.Fatalf("expected 1 selected stop, got %d", len(selected))
	}
	if selected[0].Name != "cheap-early" {
		t.Fatalf("selected %q, want cheap-early", selected[0].Name)
	}
}

func TestSelectFuelStopsDeterministic(t *testing.T) {
	points := routePoints(30, 36)
	stops := []domain.FuelStop{
		stopAt("A", 31, 3.45),
		stopAt("B", 33, 3.20),
		stopAt("C", 38, 3.55),
		stopAt("D", 41, 3.15),
		stopAt("E", 46, 3.90),
	}

	first := SelectFuelStops(points, stops, DefaultSelectOptions())
	for i := 0; i < 5; i++ {
		if again := SelectFuelStops(points, stops, DefaultSelectOptions()); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed: %v vs %v", i, first, again)
		}
	}
}

func TestSelectFuelStopsDegenerateInputs(t *testing.T) {
	stops := []domain.FuelStop{stopAt("only", 30, 3.10)}

	// A single-point route accumulates no distance and must not divide
	// by a zero-length segment.
	single := []domain.Coordinates{{Lat: 30, Lon: -100}}
	opts := DefaultSelectOptions()
	opts.FlushTrailing = false
	if got := SelectFuelStops(single, stops, opts); len(got) != 0 {
		t.Fatalf("single point, no flush: got %v", got)
	}

	if got := SelectFuelStops(nil, stops, DefaultSelectOptions()); len(got) != 0 {
		t.Fatalf("empty route: got %v", got)
	}

	if got := SelectFuelStops(routePoints(30, 16), nil, DefaultSelectOptions()); len(got) != 0 {
		t.Fatalf("empty catalog: got %v", got)
	}
}
