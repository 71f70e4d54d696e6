package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"delivery-route-optimizer/pkg"
	helper "delivery-route-optimizer/pkg/http/router/routerhelper"
)

type routingAPI struct {
	routeService RouteService
	log          *zap.Logger
}

func New(routeService RouteService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routeService: routeService,
		log:          log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.POST("/routes/optimize", api.optimizeRoute)
}

func (api *routingAPI) optimizeRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request optimizeRouteRequest

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&request); err != nil {
		api.BadRequestResponse(w, r, errors.New("request body must be valid JSON"))
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	strategy := pkg.Strategy(request.Strategy)
	if strategy == "" {
		strategy = pkg.StrategyNearestNeighbor
	}

	route, pathPolyline, err := api.routeService.OptimizeRoute(request.StartPoi, request.DestinationPois, strategy)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewOptimizeRouteResponse(route, pathPolyline)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
