//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_payments_selection_post_test
package restaurant_payments_selection_post

import (
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
	ToggleRestaurant(restaurantID int64) (bool, error)
	SelectAll() bool
	ClearSelection()
	View() restaurantpayments.View
}
