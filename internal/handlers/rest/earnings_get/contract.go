//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=earnings_get_test
package earnings_get

import (
	"khaogully-admin/internal/service/earnings"
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
	View() earnings.View
}
