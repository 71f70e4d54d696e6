package renderer

import (
	"fmt"
	"os"
	"strings"

	"delivery-route-optimizer/pkg/config"
	da "delivery-route-optimizer/pkg/datastructure"
)

// HTMLRenderer draws the road grid, blocked roads, POIs and the optimized
// route into a standalone HTML page with an inline SVG map.
type HTMLRenderer struct {
	network *da.RoadNetwork
	cfg     *config.Config
}

func NewHTMLRenderer(network *da.RoadNetwork, cfg *config.Config) *HTMLRenderer {
	return &HTMLRenderer{network: network, cfg: cfg}
}

// RenderRoute writes the visualization of route to outputFile.
func (r *HTMLRenderer) RenderRoute(route *da.Route, outputFile string) error {
	html := r.renderHTML(route)
	if err := os.WriteFile(outputFile, []byte(html), 0644); err != nil {
		return fmt.Errorf("write rendered route to %q: %w", outputFile, err)
	}
	return nil
}

func (r *HTMLRenderer) renderHTML(route *da.Route) string {
	minX, minY, maxX, maxY := r.network.Bounds()
	viewBox := fmt.Sprintf("%g %g %g %g", minX, minY, maxX, maxY)

	poiSequence := strings.Join(route.PoiOrder(), " → ")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Optimized Delivery Route</title>
    <style>
%s
    </style>
</head>
<body>
    <div class="container">
        <h1>Optimized Delivery Route</h1>
        <div class="info-grid">
            <div class="info-card">
                <h3>Statistics</h3>
                <p><strong>Total distance:</strong> %.2f px</p>
                <p><strong>Intersections traversed:</strong> %d</p>
                <p><strong>Deliveries:</strong> %d</p>
            </div>
            <div class="info-card">
                <h3>Route</h3>
                <p class="route-sequence">%s</p>
            </div>
            <div class="info-card">
                <h3>Algorithm</h3>
                <p><strong>%s</strong></p>
                <p>Improving passes: %d</p>
            </div>
        </div>
        <div class="map-container">
            <svg class="map" viewBox="%s">
%s
            </svg>
        </div>
        <div class="legend">
            <div class="legend-item"><div class="legend-color" style="background: #999;"></div><span>Open roads</span></div>
            <div class="legend-item"><div class="legend-color" style="background: #3498db;"></div><span>Optimized route</span></div>
            <div class="legend-item"><div class="legend-color" style="background: #e74c3c;"></div><span>Distribution center</span></div>
            <div class="legend-item"><div class="legend-color" style="background: #27ae60;"></div><span>Deliveries</span></div>
        </div>
    </div>
</body>
</html>
`, styleSheet, route.TotalDistance(), len(route.Path()), len(route.PoiOrder())-1,
		poiSequence, route.Algorithm(), route.Iterations(), viewBox, r.renderCanvas(route))
}

// renderCanvas emits the SVG elements: roads first as the background layer,
// then intersections, then POI markers on top.
func (r *HTMLRenderer) renderCanvas(route *da.Route) string {
	var b strings.Builder

	routePath := route.Path()
	onRoute := make(map[string]struct{}, len(routePath))
	routeEdges := make(map[[2]string]struct{}, len(routePath))
	for i, id := range routePath {
		onRoute[id] = struct{}{}
		if i < len(routePath)-1 {
			routeEdges[[2]string{routePath[i], routePath[i+1]}] = struct{}{}
			routeEdges[[2]string{routePath[i+1], routePath[i]}] = struct{}{}
		}
	}

	for _, road := range r.network.Roads() {
		if road.ToID <= road.FromID {
			continue // each physical road is two directed edges, draw once
		}
		from, _ := r.network.Intersection(road.FromID)
		to, _ := r.network.Intersection(road.ToID)

		class := "road"
		if _, ok := routeEdges[[2]string{road.FromID, road.ToID}]; ok {
			class = "route-road"
		}
		if !road.Passable {
			class += " road-blocked"
		}
		fmt.Fprintf(&b, `            <line x1="%g" y1="%g" x2="%g" y2="%g" class="%s"/>`+"\n",
			from.PixelX, from.PixelY, to.PixelX, to.PixelY, class)
	}

	for _, inter := range r.network.Intersections() {
		if !inter.Passable {
			continue
		}
		class := "intersection"
		if _, ok := onRoute[inter.ID]; ok {
			class = "intersection-active"
		}
		fmt.Fprintf(&b, `            <circle cx="%g" cy="%g" r="3" class="%s"/>`+"\n",
			inter.PixelX, inter.PixelY, class)
	}

	for _, poiID := range r.network.Pois() {
		inter, ok := r.network.PoiIntersection(poiID)
		if !ok {
			continue
		}

		name := poiID
		nodeType := "delivery"
		if node, ok := r.cfg.NodeByID(poiID); ok {
			nodeType = node.Type
			if node.Name != "" {
				name = node.Name
			}
		}

		class := "poi-marker"
		if nodeType != "distribution_center" {
			class += " delivery"
		}
		fmt.Fprintf(&b, `            <circle cx="%g" cy="%g" r="8" class="%s"/>`+"\n",
			inter.PixelX, inter.PixelY, class)
		fmt.Fprintf(&b, `            <text x="%g" y="%g" class="poi-label">%s</text>`+"\n",
			inter.PixelX, inter.PixelY+18, name)
	}

	return b.String()
}

const styleSheet = `        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }

        .container {
            background: white;
            border-radius: 12px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
            padding: 30px;
            max-width: 1400px;
            margin: 0 auto;
        }

        h1 {
            color: #333;
            margin-bottom: 20px;
            text-align: center;
        }

        .info-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 15px;
            margin-bottom: 30px;
        }

        .info-card {
            background: #f8f9fa;
            border-left: 4px solid #667eea;
            padding: 15px;
            border-radius: 4px;
        }

        .info-card h3 {
            color: #667eea;
            margin-bottom: 10px;
            font-size: 1.1em;
        }

        .info-card p {
            margin: 5px 0;
            color: #555;
            font-size: 14px;
        }

        .route-sequence {
            color: #333;
            font-size: 13px;
            word-break: break-word;
            font-weight: bold;
        }

        .map-container {
            width: 100%;
            margin-bottom: 20px;
            border: 2px solid #ddd;
            border-radius: 8px;
            overflow: hidden;
            background: #f5f7fa;
        }

        .map {
            width: 100%;
            height: 600px;
            display: block;
        }

        .road {
            stroke: #999;
            stroke-width: 2;
            fill: none;
        }

        .road-blocked {
            stroke: #ddd;
            stroke-dasharray: 5,5;
            opacity: 0.5;
        }

        .route-road {
            stroke: #3498db;
            stroke-width: 3;
            fill: none;
            opacity: 0.9;
            stroke-linecap: round;
            stroke-linejoin: round;
        }

        .intersection {
            fill: #f5f7fa;
            stroke: #999;
            stroke-width: 1;
        }

        .intersection-active {
            fill: #e8f4f8;
            stroke: #3498db;
            stroke-width: 2;
        }

        .poi-marker {
            fill: #e74c3c;
            stroke: #c0392b;
            stroke-width: 2;
        }

        .poi-marker.delivery {
            fill: #27ae60;
            stroke: #229954;
        }

        .poi-label {
            font-size: 12px;
            fill: #333;
            text-anchor: middle;
            font-weight: bold;
            pointer-events: none;
        }

        .legend {
            display: flex;
            flex-wrap: wrap;
            gap: 20px;
            padding: 15px;
            background: #f8f9fa;
            border-radius: 4px;
        }

        .legend-item {
            display: flex;
            align-items: center;
            gap: 8px;
            font-size: 14px;
        }

        .legend-color {
            width: 20px;
            height: 20px;
            border-radius: 2px;
            border: 1px solid #999;
        }`
