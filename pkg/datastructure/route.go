package datastructure

// Route is the final, immutable result of one optimization call: the
// POI-level tour, the fully expanded intersection-level path, the total
// travel distance, the algorithm combination that produced it, and the
// number of improving 2-opt passes performed (0 for an unrefined tour).
type Route struct {
	poiOrder      []string
	path          []string
	totalDistance float64
	algorithm     string
	iterations    int
}

func NewRoute(poiOrder, path []string, totalDistance float64, algorithm string, iterations int) *Route {
	r := &Route{
		poiOrder:      make([]string, len(poiOrder)),
		path:          make([]string, len(path)),
		totalDistance: totalDistance,
		algorithm:     algorithm,
		iterations:    iterations,
	}
	copy(r.poiOrder, poiOrder)
	copy(r.path, path)
	return r
}

// PoiOrder returns the visiting order of POIs, start first.
func (r *Route) PoiOrder() []string {
	out := make([]string, len(r.poiOrder))
	copy(out, r.poiOrder)
	return out
}

// Path returns the full intersection-level path, one entry per traversed
// intersection, junction duplicates already removed.
func (r *Route) Path() []string {
	out := make([]string, len(r.path))
	copy(out, r.path)
	return out
}

func (r *Route) TotalDistance() float64 {
	return r.totalDistance
}

func (r *Route) Algorithm() string {
	return r.algorithm
}

func (r *Route) Iterations() int {
	return r.iterations
}
