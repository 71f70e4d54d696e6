package controllers

import (
	da "delivery-route-optimizer/pkg/datastructure"
)

type optimizeRouteRequest struct {
	StartPoi        string   `json:"start_poi" validate:"required"`
	DestinationPois []string `json:"destination_pois" validate:"required,min=1,dive,required"`
	Strategy        string   `json:"strategy" validate:"omitempty,oneof=nearest_neighbor 2opt"`
}

type optimizeRouteResponse struct {
	PoiOrder      []string `json:"poi_order"`
	Path          []string `json:"path"`
	PathPolyline  string   `json:"path_polyline"`
	TotalDistance float64  `json:"total_distance"`
	Algorithm     string   `json:"algorithm"`
	Iterations    int      `json:"iterations"`
}

func NewOptimizeRouteResponse(route *da.Route, pathPolyline string) optimizeRouteResponse {
	return optimizeRouteResponse{
		PoiOrder:      route.PoiOrder(),
		Path:          route.Path(),
		PathPolyline:  pathPolyline,
		TotalDistance: route.TotalDistance(),
		Algorithm:     route.Algorithm(),
		Iterations:    route.Iterations(),
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
