//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pool_drivers_get_test
package pool_drivers_get

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
	AvailableDrivers(ctx context.Context) ([]entities.AvailableDriver, error)
	ApprovedDrivers(ctx context.Context) ([]entities.Driver, error)
}
