//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_logout_post_test
package session_logout_post

import (
	"context"

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
	Logout(ctx context.Context) error
}
