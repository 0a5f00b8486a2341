package backend

import (
	"context"
	"net/http"

	"khaogully-admin/internal/entities"
)

func (g *Gateway) ListDrivers(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error) {
	var drivers []entities.Driver
	query := optional(nil, "status", string(filter.Status))
	if err := g.get(ctx, "/drivers", "/drivers", query, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (g *Gateway) UpdateDriverStatus(ctx context.Context, driverID int64, status entities.DriverStatus) error {
	body := struct {
		Status entities.DriverStatus `json:"status"`
	}{Status: status}
	return g.call(ctx, http.MethodPatch, "/drivers/{id}/status", "/drivers/"+id(driverID)+"/status", nil, body, nil)
}

func (g *Gateway) UpdateDriverBankDetails(ctx context.Context, driverID int64, bank entities.BankDetails) (*entities.Driver, error) {
	var driver entities.Driver
	if err := g.call(ctx, http.MethodPatch, "/drivers/{id}", "/drivers/"+id(driverID), nil, bank, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (g *Gateway) ListAvailableDrivers(ctx context.Context) ([]entities.AvailableDriver, error) {
	var drivers []entities.AvailableDriver
	if err := g.get(ctx, "/available-drivers", "/available-drivers", nil, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}
