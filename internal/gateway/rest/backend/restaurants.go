package backend

import (
	"context"
	"net/http"
	"net/url"

	"khaogully-admin/internal/entities"
)

func (g *Gateway) GetRestaurantEarningStats(ctx context.Context) (*entities.RestaurantEarningStats, error) {
	var res entities.RestaurantEarningStats
	if err := g.get(ctx, "/restaurant-earnings/stats", "/restaurant-earnings/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) ListRestaurantEarnings(ctx context.Context, status entities.RestaurantEarningStatus) ([]entities.RestaurantEarningSummary, error) {
	var res []entities.RestaurantEarningSummary
	query := optional(nil, "status", string(status))
	if err := g.get(ctx, "/restaurant-earnings/restaurants", "/restaurant-earnings/restaurants", query, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Gateway) GetRestaurantEarnings(ctx context.Context, restaurantID int64) (*entities.RestaurantEarningsDetail, error) {
	var res entities.RestaurantEarningsDetail
	query := url.Values{"show_paid": {"true"}}
	path := "/restaurant-earnings/restaurants/" + id(restaurantID)
	if err := g.get(ctx, "/restaurant-earnings/restaurants/{id}", path, query, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) ProcessRestaurantPayout(ctx context.Context, req entities.RestaurantPayoutRequest) (*entities.RestaurantPayoutResult, error) {
	var res entities.RestaurantPayoutResult
	route := "/restaurant-earnings/process-payout"
	if err := g.call(ctx, http.MethodPost, route, route, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) SyncRestaurantPortal(ctx context.Context, restaurantID int64) (*entities.PortalSyncResult, error) {
	var res entities.PortalSyncResult
	path := "/restaurant-earnings/sync-to-restaurant-portal/" + id(restaurantID)
	if err := g.call(ctx, http.MethodPost, "/restaurant-earnings/sync-to-restaurant-portal/{id}", path, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) UpdateRestaurant(ctx context.Context, restaurantID int64, update entities.RestaurantUpdate) error {
	return g.call(ctx, http.MethodPatch, "/restaurants/{id}", "/restaurants/"+id(restaurantID), nil, update, nil)
}
