//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pool_group_assign_post_test
package pool_group_assign_post

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
	AssignGroup(ctx context.Context, poolID, groupID, driverID int64) (*entities.ActionResult, error)
}
