package backend

import (
	"context"
	"net/http"
	"net/url"

	"khaogully-admin/internal/entities"
)

func (g *Gateway) ListCommissionRates(ctx context.Context, activeOnly bool) ([]entities.CommissionRate, error) {
	var res []entities.CommissionRate
	var query url.Values
	if activeOnly {
		query = url.Values{"active_only": {"true"}}
	}
	if err := g.get(ctx, "/commission/rates", "/commission/rates", query, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Gateway) CreateCommissionRate(ctx context.Context, rate entities.CommissionRateCreate) (*entities.CommissionRate, error) {
	var res entities.CommissionRate
	if err := g.call(ctx, http.MethodPost, "/commission/rates", "/commission/rates", nil, rate, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) UpdateCommissionRate(ctx context.Context, rateID int64, update entities.CommissionRateUpdate) (*entities.CommissionRate, error) {
	var res entities.CommissionRate
	if err := g.call(ctx, http.MethodPatch, "/commission/rates/{id}", "/commission/rates/"+id(rateID), nil, update, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) DeleteCommissionRate(ctx context.Context, rateID int64) error {
	return g.call(ctx, http.MethodDelete, "/commission/rates/{id}", "/commission/rates/"+id(rateID), nil, nil, nil)
}

func (g *Gateway) ListRestaurantCommissions(ctx context.Context) ([]entities.RestaurantWithCommission, error) {
	var res []entities.RestaurantWithCommission
	if err := g.get(ctx, "/commission/restaurants", "/commission/restaurants", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Gateway) AssignRestaurantCommission(ctx context.Context, req entities.AssignCommissionRequest) (*entities.RestaurantCommissionAssignment, error) {
	var res entities.RestaurantCommissionAssignment
	route := "/commission/restaurants/assign"
	if err := g.call(ctx, http.MethodPost, route, route, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) ChangeRestaurantCommission(ctx context.Context, restaurantID int64, req entities.ChangeCommissionRequest) (*entities.RestaurantCommissionAssignment, error) {
	var res entities.RestaurantCommissionAssignment
	path := "/commission/restaurants/" + id(restaurantID) + "/commission"
	if err := g.call(ctx, http.MethodPatch, "/commission/restaurants/{id}/commission", path, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) GetRestaurantCommissionHistory(ctx context.Context, restaurantID int64) ([]entities.CommissionHistory, error) {
	var res []entities.CommissionHistory
	path := "/commission/restaurants/" + id(restaurantID) + "/history"
	if err := g.get(ctx, "/commission/restaurants/{id}/history", path, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Gateway) GetPlatformConfig(ctx context.Context) (*entities.PlatformConfig, error) {
	var res entities.PlatformConfig
	if err := g.get(ctx, "/commission/config", "/commission/config", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) UpdatePlatformConfig(ctx context.Context, update entities.PlatformConfigUpdate) (*entities.PlatformConfig, error) {
	var res entities.PlatformConfig
	if err := g.call(ctx, http.MethodPatch, "/commission/config", "/commission/config", nil, update, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
