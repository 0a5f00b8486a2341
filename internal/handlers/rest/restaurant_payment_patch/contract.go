//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_payment_patch_test
package restaurant_payment_patch

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
	UpdateBankDetails(ctx context.Context, restaurantID int64, bank entities.BankDetails) error
	UpdateContact(ctx context.Context, restaurantID int64, phone, email string) error
}
