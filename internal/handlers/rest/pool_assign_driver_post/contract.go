//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pool_assign_driver_post_test
package pool_assign_driver_post

import (
	"context"

	"github.com/shopspring/decimal"

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
	AssignSelected(ctx context.Context, poolID, driverID int64, earnings *decimal.Decimal) (*entities.ActionResult, error)
}
