//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=earnings_driver_get_test
package earnings_driver_get

import (
	"context"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/daterange"
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
	Detail(ctx context.Context, driverID int64, showPaid bool, r daterange.Range) (*entities.DriverEarningsDetail, error)
}
