package routing

import (
	"delivery-route-optimizer/pkg"
	da "delivery-route-optimizer/pkg/datastructure"
	"delivery-route-optimizer/pkg/util"
)

// Dijkstra answers minimum-distance and minimum-distance-path queries
// between intersections of one road network. Correctness relies on edge
// weights being non-negative, which holds by construction (Euclidean
// distances).
//
// A Dijkstra value holds per-query state and must not be shared across
// goroutines; the underlying network is only read.
type Dijkstra struct {
	network *da.RoadNetwork

	dist    map[string]float64
	prev    map[string]string
	visited map[string]struct{}
	nodes   map[string]*da.PriorityQueueNode[string]
	pq      *da.MinHeap[string]
}

func NewDijkstra(network *da.RoadNetwork) *Dijkstra {
	return &Dijkstra{
		network: network,
		pq:      da.NewFourAryHeap[string](),
	}
}

// Distance returns the minimum total weight from startID to endID over
// passable edges and intersections, or pkg.INF_DISTANCE when no path exists.
// Unreachable is a valid outcome, not a fault.
func (d *Dijkstra) Distance(startID, endID string) float64 {
	if startID == endID {
		return 0
	}

	d.reset(startID)

	for !d.pq.IsEmpty() {
		node, err := d.pq.ExtractMin()
		if err != nil {
			break
		}
		current := node.GetItem()
		if _, ok := d.visited[current]; ok {
			continue
		}
		// the target is finalized the moment it leaves the frontier
		if current == endID {
			return node.GetRank()
		}
		d.visited[current] = struct{}{}

		d.relaxNeighbors(current, node.GetRank())
	}

	return d.distanceTo(endID)
}

// Path returns the shortest intersection sequence from startID to endID and
// its total weight. The path is reconstructed by walking predecessors from
// endID back to startID. Returns (nil, INF_DISTANCE) when endID is
// unreachable; ([startID], 0) when startID == endID.
func (d *Dijkstra) Path(startID, endID string) ([]string, float64) {
	if startID == endID {
		return []string{startID}, 0
	}

	d.reset(startID)

	for !d.pq.IsEmpty() {
		node, err := d.pq.ExtractMin()
		if err != nil {
			break
		}
		current := node.GetItem()
		if _, ok := d.visited[current]; ok {
			continue
		}
		d.visited[current] = struct{}{}

		d.relaxNeighbors(current, node.GetRank())
	}

	total := d.distanceTo(endID)
	if total >= pkg.INF_DISTANCE {
		return nil, pkg.INF_DISTANCE
	}

	reversed := make([]string, 0, 8)
	for current := endID; ; {
		reversed = append(reversed, current)
		if current == startID {
			break
		}
		parent, ok := d.prev[current]
		if !ok {
			// endID got a finite distance without a predecessor chain back to
			// startID; cannot happen for a consistent relaxation
			return nil, pkg.INF_DISTANCE
		}
		current = parent
	}
	return util.ReverseG(reversed), total
}

func (d *Dijkstra) reset(startID string) {
	d.dist = make(map[string]float64)
	d.prev = make(map[string]string)
	d.visited = make(map[string]struct{})
	d.nodes = make(map[string]*da.PriorityQueueNode[string])
	d.pq.Clear()

	start := da.NewPriorityQueueNode(0, startID)
	d.dist[startID] = 0
	d.nodes[startID] = start
	d.pq.Insert(start)
}

func (d *Dijkstra) relaxNeighbors(current string, currentDist float64) {
	for _, neighbor := range d.network.Neighbors(current) {
		if _, ok := d.visited[neighbor.ID]; ok {
			continue
		}
		newDist := currentDist + neighbor.Weight
		if newDist >= d.distanceTo(neighbor.ID) {
			continue
		}

		d.dist[neighbor.ID] = newDist
		d.prev[neighbor.ID] = current

		if node, ok := d.nodes[neighbor.ID]; ok && node.GetPos() >= 0 {
			_ = d.pq.DecreaseKey(node, newDist)
		} else {
			node := da.NewPriorityQueueNode(newDist, neighbor.ID)
			d.nodes[neighbor.ID] = node
			d.pq.Insert(node)
		}
	}
}

func (d *Dijkstra) distanceTo(intersectionID string) float64 {
	if dist, ok := d.dist[intersectionID]; ok {
		return dist
	}
	return pkg.INF_DISTANCE
}
