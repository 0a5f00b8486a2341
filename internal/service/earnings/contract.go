//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=earnings_test
package earnings

import (
	"context"
	"time"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/submitguard"
)

type EarningsGateway interface {
	ListDriverEarnings(ctx context.Context) ([]entities.DriverEarningSummary, error)
	GetDriverEarningStats(ctx context.Context) (*entities.DriverEarningStats, error)
	GetDriverEarnings(ctx context.Context, driverID int64, showPaid bool) (*entities.DriverEarningsDetail, error)
	ProcessDriverPayout(ctx context.Context, req entities.DriverPayoutRequest) (*entities.DriverPayoutResult, error)
}

type DriverGateway interface {
	UpdateDriverBankDetails(ctx context.Context, driverID int64, bank entities.BankDetails) (*entities.Driver, error)
}

// PayoutGuard не даёт отправить одну выплату дважды.
type PayoutGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (submitguard.Release, error)
}
