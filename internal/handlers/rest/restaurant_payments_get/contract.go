//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_payments_get_test
package restaurant_payments_get

import (
	"context"

	"khaogully-admin/internal/entities"
	"khaogully-admin/internal/service/restaurantpayments"
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
	SetStatusFilter(ctx context.Context, status entities.RestaurantEarningStatus) error
	View() restaurantpayments.View
}
