//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drivers_test
package drivers

import (
	"context"

	"khaogully-admin/internal/entities"
)

type DriverGateway interface {
	ListDrivers(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error)
	UpdateDriverStatus(ctx context.Context, driverID int64, status entities.DriverStatus) error
	UpdateDriverBankDetails(ctx context.Context, driverID int64, bank entities.BankDetails) (*entities.Driver, error)
}
