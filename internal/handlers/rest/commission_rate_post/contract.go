//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commission_rate_post_test
package commission_rate_post

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
	CreateRate(ctx context.Context, rate entities.CommissionRateCreate) (*entities.CommissionRate, error)
}
