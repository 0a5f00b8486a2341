package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/realtime"
	"khaogully-admin/pkg/snapshot"
)

type View struct {
	Status    entities.OrderStatus `json:"status_filter,omitempty"`
	Orders    []entities.Order     `json:"orders"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// AssignmentForm состояние диалога назначения водителя.
type AssignmentForm struct {
	OrderID        int64           `json:"order_id"`
	DriverID       int64           `json:"driver_id"`
	DriverEarnings decimal.Decimal `json:"driver_earnings"`
}

func DefaultAssignmentForm() AssignmentForm {
	return AssignmentForm{DriverEarnings: entities.DefaultDriverEarnings}
}

type Service struct {
	log     logger.Logger
	orders  OrderGateway
	drivers DriverGateway

	list       *snapshot.Store[View]
	assignable *snapshot.Store[[]entities.Driver]

	filter *snapshot.Store[entities.OrderFilter]
}

func New(log logger.Logger, orders OrderGateway, drivers DriverGateway) *Service {
	return &Service{
		log:        log.With(logger.NewField("view", "orders")),
		orders:     orders,
		drivers:    drivers,
		list:       snapshot.New[View](),
		assignable: snapshot.New[[]entities.Driver](),
		filter:     snapshot.New[entities.OrderFilter](),
	}
}

func (s *Service) View() View {
	v, at := s.list.Load()
	v.UpdatedAt = at
	if v.Orders == nil {
		v.Orders = []entities.Order{}
	}
	return v
}

// AssignableDrivers одобренные или активные водители онлайн.
func (s *Service) AssignableDrivers() []entities.Driver {
	drivers := s.assignable.Value()
	if drivers == nil {
		return []entities.Driver{}
	}
	return drivers
}

// SetStatusFilter пустой статус снимает фильтр.
func (s *Service) SetStatusFilter(ctx context.Context, status entities.OrderStatus) error {
	if status != "" && !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	s.filter.Apply(s.filter.Begin(), entities.OrderFilter{Status: status})
	return s.Reload(ctx)
}

// Reload общая перезагрузка для таймера и push-событий.
func (s *Service) Reload(ctx context.Context) error {
	filter := s.filter.Value()
	ticket := s.list.Begin()

	orders, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	if !s.list.Apply(ticket, View{Status: filter.Status, Orders: orders}) {
		s.log.Debug("stale orders response dropped")
	}
	return nil
}

func (s *Service) ReloadDrivers(ctx context.Context) error {
	ticket := s.assignable.Begin()

	drivers, err := s.drivers.ListDrivers(ctx, entities.DriverFilter{})
	if err != nil {
		return fmt.Errorf("list drivers: %w", err)
	}

	assignable := make([]entities.Driver, 0, len(drivers))
	for _, d := range drivers {
		if d.Assignable() {
			assignable = append(assignable, d)
		}
	}
	s.assignable.Apply(ticket, assignable)
	return nil
}

// Assign назначает водителя и после одной перезагрузки возвращает
// форму в исходное состояние. При ошибке форма возвращается как была.
func (s *Service) Assign(ctx context.Context, form AssignmentForm) (AssignmentForm, error) {
	switch {
	case form.OrderID <= 0:
		return form, ErrOrderRequired
	case form.DriverID <= 0:
		return form, ErrDriverRequired
	case form.DriverEarnings.IsNegative():
		return form, ErrNegativeEarnings
	}

	err := s.orders.AssignOrder(ctx, form.OrderID, entities.OrderAssignment{
		DriverID:       form.DriverID,
		DriverEarnings: form.DriverEarnings,
	})
	if err != nil {
		return form, fmt.Errorf("assign order %d: %w", form.OrderID, err)
	}

	s.log.Info("driver assigned",
		logger.NewField("order_id", form.OrderID),
		logger.NewField("driver_id", form.DriverID),
	)
	s.refresh(ctx)
	return DefaultAssignmentForm(), nil
}

func (s *Service) Unassign(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return ErrOrderRequired
	}
	if err := s.orders.UnassignOrder(ctx, orderID); err != nil {
		return fmt.Errorf("unassign order %d: %w", orderID, err)
	}

	s.log.Info("order unassigned", logger.NewField("order_id", orderID))
	s.refresh(ctx)
	return nil
}

// MarkDelivered необратимо: backend создаёт начисления водителю и ресторану.
func (s *Service) MarkDelivered(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return ErrOrderRequired
	}
	if err := s.orders.AdminDeliverOrder(ctx, orderID); err != nil {
		return fmt.Errorf("deliver order %d: %w", orderID, err)
	}

	s.log.Info("order marked delivered", logger.NewField("order_id", orderID))
	s.refresh(ctx)
	return nil
}

func (s *Service) CreateTestOrder(ctx context.Context, order entities.OrderCreate) (*entities.Order, error) {
	created, err := s.orders.CreateOrder(ctx, order.WithTestDefaults())
	if err != nil {
		return nil, fmt.Errorf("create test order: %w", err)
	}

	s.log.Info("test order created", logger.NewField("order_id", created.ID))
	s.refresh(ctx)
	return created, nil
}

// OnOrderUpdate обработчик order_update.
func (s *Service) OnOrderUpdate(ctx context.Context, _ realtime.Event) error {
	return s.Reload(ctx)
}

func (s *Service) Open() {
	s.list.Reopen()
	s.assignable.Reopen()
}

func (s *Service) Close() {
	s.list.Close()
	s.assignable.Close()
}

// refresh ошибка перезагрузки после успешной команды не отменяет команду.
func (s *Service) refresh(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.log.Warn("reload after action failed", logger.NewField("error", err))
	}
}
