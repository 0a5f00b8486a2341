//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commission_test
package commission

import (
	"context"

	"khaogully-admin/internal/entities"
)

type CommissionGateway interface {
	ListCommissionRates(ctx context.Context, activeOnly bool) ([]entities.CommissionRate, error)
	CreateCommissionRate(ctx context.Context, rate entities.CommissionRateCreate) (*entities.CommissionRate, error)
	UpdateCommissionRate(ctx context.Context, rateID int64, update entities.CommissionRateUpdate) (*entities.CommissionRate, error)
	DeleteCommissionRate(ctx context.Context, rateID int64) error
	ListRestaurantCommissions(ctx context.Context) ([]entities.RestaurantWithCommission, error)
	AssignRestaurantCommission(ctx context.Context, req entities.AssignCommissionRequest) (*entities.RestaurantCommissionAssignment, error)
	ChangeRestaurantCommission(ctx context.Context, restaurantID int64, req entities.ChangeCommissionRequest) (*entities.RestaurantCommissionAssignment, error)
	GetRestaurantCommissionHistory(ctx context.Context, restaurantID int64) ([]entities.CommissionHistory, error)
	GetPlatformConfig(ctx context.Context) (*entities.PlatformConfig, error)
	UpdatePlatformConfig(ctx context.Context, update entities.PlatformConfigUpdate) (*entities.PlatformConfig, error)
}
