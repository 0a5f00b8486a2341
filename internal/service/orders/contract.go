//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_test
package orders

import (
	"context"

	"khaogully-admin/internal/entities"
)

type OrderGateway interface {
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	CreateOrder(ctx context.Context, order entities.OrderCreate) (*entities.Order, error)
	AssignOrder(ctx context.Context, orderID int64, assignment entities.OrderAssignment) error
	UnassignOrder(ctx context.Context, orderID int64) error
	AdminDeliverOrder(ctx context.Context, orderID int64) error
}

type DriverGateway interface {
	ListDrivers(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error)
}
