//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurantpayments_test
package restaurantpayments

import (
	"context"
	"time"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/submitguard"
)

type EarningsGateway interface {
	GetRestaurantEarningStats(ctx context.Context) (*entities.RestaurantEarningStats, error)
	ListRestaurantEarnings(ctx context.Context, status entities.RestaurantEarningStatus) ([]entities.RestaurantEarningSummary, error)
	GetRestaurantEarnings(ctx context.Context, restaurantID int64) (*entities.RestaurantEarningsDetail, error)
	ProcessRestaurantPayout(ctx context.Context, req entities.RestaurantPayoutRequest) (*entities.RestaurantPayoutResult, error)
	SyncRestaurantPortal(ctx context.Context, restaurantID int64) (*entities.PortalSyncResult, error)
}

type RestaurantGateway interface {
	UpdateRestaurant(ctx context.Context, restaurantID int64, update entities.RestaurantUpdate) error
}

type CommissionGateway interface {
	ListCommissionRates(ctx context.Context, activeOnly bool) ([]entities.CommissionRate, error)
	AssignRestaurantCommission(ctx context.Context, req entities.AssignCommissionRequest) (*entities.RestaurantCommissionAssignment, error)
}

type PayoutGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (submitguard.Release, error)
}
