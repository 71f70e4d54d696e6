package controllers

import (
	"delivery-route-optimizer/pkg"
	da "delivery-route-optimizer/pkg/datastructure"
)

type RouteService interface {
	OptimizeRoute(startPoi string, destinationPois []string, strategy pkg.Strategy) (*da.Route, string, error)
}
