//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pool_orders_toggle_unassigned_post_test
package pool_orders_toggle_unassigned_post

import (
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
	ToggleUnassigned(poolID int64) (bool, error)
	Selected() pools.Selected
}
