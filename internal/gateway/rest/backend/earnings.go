package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"khaogully-admin/internal/entities"
)

func (g *Gateway) ListDriverEarnings(ctx context.Context) ([]entities.DriverEarningSummary, error) {
	var res []entities.DriverEarningSummary
	query := url.Values{"status": {"all"}}
	if err := g.get(ctx, "/earnings/drivers", "/earnings/drivers", query, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Gateway) GetDriverEarningStats(ctx context.Context) (*entities.DriverEarningStats, error) {
	var res entities.DriverEarningStats
	if err := g.get(ctx, "/earnings/stats", "/earnings/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) GetDriverEarnings(ctx context.Context, driverID int64, showPaid bool) (*entities.DriverEarningsDetail, error) {
	var res entities.DriverEarningsDetail
	query := url.Values{"show_paid": {strconv.FormatBool(showPaid)}}
	if err := g.get(ctx, "/earnings/drivers/{id}", "/earnings/drivers/"+id(driverID), query, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) ProcessDriverPayout(ctx context.Context, req entities.DriverPayoutRequest) (*entities.DriverPayoutResult, error) {
	var res entities.DriverPayoutResult
	if err := g.call(ctx, http.MethodPost, "/earnings/process-payout", "/earnings/process-payout", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
