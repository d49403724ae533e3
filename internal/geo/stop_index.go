package geo

import (
	"sort"

	"github.com/mmcloughlin/geohash"

	"fuel-route-service/internal/domain"
)

// Minimum physical cell dimension in kilometers for relevant geohash
// precisions (cell height; longitude width only shrinks toward the poles).
var cellMinKm = map[uint]float64{
	4: 19.5,
	5: 4.89,
	6: 0.61,
}

// StopIndex buckets catalog positions by geohash cell so proximity
// queries touch a handful of cells instead of the full catalog.
//
// Candidate indices are returned in ascending catalog order, which keeps
// segment tie-breaking identical to a linear scan of the catalog: with a
// strict less-than price comparison, the first stop encountered at the
// minimum price wins.
type StopIndex struct {
	cells          map[string][]int
	points         []domain.Coordinates
	thresholdMiles float64
	precision      uint
}

// Pick the finest precision whose cells are still wide enough that one
// cell plus its eight neighbors covers the threshold radius. The 2x
// margin absorbs longitude-width shrink at continental-US latitudes.
func precisionFor(thresholdMiles float64) uint {
	thresholdKm := thresholdMiles * 1.609344
	for _, p := range []uint{6, 5, 4} {
		if cellMinKm[p] >= 2*thresholdKm {
			return p
		}
	}
	return 3
}

// NewStopIndex builds an index over points for proximity queries at the
// given threshold. The slice is indexed by position; callers keep the
// parallel catalog slice.
func NewStopIndex(points []domain.Coordinates, thresholdMiles float64) *StopIndex {
	ix := &StopIndex{
		cells:          make(map[string][]int, len(points)),
		points:         points,
		thresholdMiles: thresholdMiles,
		precision:      precisionFor(thresholdMiles),
	}

	for i, p := range points {
		cell := geohash.EncodeWithPrecision(p.Lat, p.Lon, ix.precision)
		ix.cells[cell] = append(ix.cells[cell], i)
	}

	return ix
}

// Near returns the catalog indices of all points within the index
// threshold of p, sorted ascending. A distance exactly equal to the
// threshold counts as near.
func (ix *StopIndex) Near(p domain.Coordinates) []int {
	cell := geohash.EncodeWithPrecision(p.Lat, p.Lon, ix.precision)

	var candidates []int
	candidates = append(candidates, ix.cells[cell]...)
	for _, n := range geohash.Neighbors(cell) {
		candidates = append(candidates, ix.cells[n]...)
	}

	if len(candidates) == 0 {
		return nil
	}
	sort.Ints(candidates)

	out := candidates[:0]
	for _, i := range candidates {
		if Distance(ix.points[i], p) <= ix.thresholdMiles {
			out = append(out, i)
		}
	}
	return out
}
