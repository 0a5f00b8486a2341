//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_login_post_test
package session_login_post

import (
	"context"

	"khaogully-admin/internal/service/session"
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
	Login(ctx context.Context, email, password string) error
	State() session.State
}
