package backend

import (
	"context"
	"net/http"

	"khaogully-admin/internal/entities"
)

func (g *Gateway) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	var orders []entities.Order
	query := optional(nil, "status", string(filter.Status))
	if err := g.get(ctx, "/orders", "/orders", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *Gateway) CreateOrder(ctx context.Context, order entities.OrderCreate) (*entities.Order, error) {
	var created entities.Order
	if err := g.call(ctx, http.MethodPost, "/orders", "/orders", nil, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *Gateway) AssignOrder(ctx context.Context, orderID int64, assignment entities.OrderAssignment) error {
	return g.call(ctx, http.MethodPost, "/orders/{id}/assign", "/orders/"+id(orderID)+"/assign", nil, assignment, nil)
}

func (g *Gateway) UnassignOrder(ctx context.Context, orderID int64) error {
	return g.call(ctx, http.MethodPost, "/orders/{id}/unassign", "/orders/"+id(orderID)+"/unassign", nil, nil, nil)
}

func (g *Gateway) AdminDeliverOrder(ctx context.Context, orderID int64) error {
	return g.call(ctx, http.MethodPost, "/orders/{id}/admin-deliver", "/orders/"+id(orderID)+"/admin-deliver", nil, nil, nil)
}
