//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=earnings_payout_post_test
package earnings_payout_post

import (
	"context"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessPayout(ctx context.Context, form entities.PayoutForm) (*entities.DriverPayoutResult, error)
}
