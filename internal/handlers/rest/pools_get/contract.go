//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pools_get_test
package pools_get

import (
	"context"

	"khaogully-admin/internal/entities"
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
	SetStatusFilter(ctx context.Context, status entities.PoolStatus) error
	View() pools.View
}
