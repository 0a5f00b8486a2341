//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_payment_get_test
package restaurant_payment_get

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
	Detail(ctx context.Context, restaurantID int64, r daterange.Range) (*entities.RestaurantEarningsDetail, error)
}
