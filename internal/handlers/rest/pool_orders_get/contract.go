//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pool_orders_get_test
package pool_orders_get

import (
	"context"

	"khaogully-admin/internal/service/pools"
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
	SelectPool(ctx context.Context, poolID int64) (pools.Selected, error)
}
