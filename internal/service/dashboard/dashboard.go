// Package dashboard сводка на главной странице и лента последних событий.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/realtime"
	"khaogully-admin/pkg/snapshot"
)

// FeedSize сколько последних событий хранит лента.
const FeedSize = 5

const unknownDriver = "Unknown"

type View struct {
	Stats     entities.DashboardStats `json:"stats"`
	Activity  []entities.Activity     `json:"activity"`
	UpdatedAt time.Time               `json:"updated_at"`
}

type Service struct {
	log     logger.Logger
	orders  OrderGateway
	drivers DriverGateway
	stats   *snapshot.Store[entities.DashboardStats]
	now     func() time.Time

	mu   sync.Mutex
	feed []entities.Activity
}

func New(log logger.Logger, orders OrderGateway, drivers DriverGateway) *Service {
	return &Service{
		log:     log.With(logger.NewField("view", "dashboard")),
		orders:  orders,
		drivers: drivers,
		stats:   snapshot.New[entities.DashboardStats](),
		now:     time.Now,
	}
}

func (s *Service) View() View {
	stats, at := s.stats.Load()

	s.mu.Lock()
	feed := make([]entities.Activity, len(s.feed))
	copy(feed, s.feed)
	s.mu.Unlock()

	return View{Stats: stats, Activity: feed, UpdatedAt: at}
}

// Reload заказы и водители загружаются параллельно, статистика считается локально.
func (s *Service) Reload(ctx context.Context) error {
	ticket := s.stats.Begin()

	var (
		orders  []entities.Order
		drivers []entities.Driver
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if orders, err = s.orders.ListOrders(gctx, entities.OrderFilter{}); err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if drivers, err = s.drivers.ListDrivers(gctx, entities.DriverFilter{}); err != nil {
			return fmt.Errorf("list drivers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.stats.Apply(ticket, Compute(orders, drivers))
	return nil
}

// Compute считает показатели сводки.
func Compute(orders []entities.Order, drivers []entities.Driver) entities.DashboardStats {
	var stats entities.DashboardStats
	var delivered []entities.Order
	for _, o := range orders {
		switch {
		case o.Status.IsActive():
			stats.ActiveOrders++
		case o.Status == entities.OrderStatusPending:
			stats.PendingOrders++
		case o.Status == entities.OrderStatusDelivered:
			delivered = append(delivered, o)
		}
	}
	for _, d := range drivers {
		if d.IsOnline {
			stats.OnlineDrivers++
		}
	}
	stats.TotalRevenue = entities.SumMoney(delivered, func(o entities.Order) decimal.Decimal { return o.Amount() })
	return stats
}

// OnOrderUpdate добавляет событие в ленту и перезагружает сводку.
func (s *Service) OnOrderUpdate(ctx context.Context, ev realtime.Event) error {
	var update entities.OrderUpdate
	if err := ev.Decode(&update); err != nil {
		return fmt.Errorf("decode order update: %w", err)
	}

	driver := unknownDriver
	if update.DriverName != nil && *update.DriverName != "" {
		driver = *update.DriverName
	}
	s.push(entities.Activity{
		ID:       uuid.NewString(),
		Title:    fmt.Sprintf("Order #%d is %s", update.OrderID, update.Status),
		Subtitle: "Driver: " + driver,
		At:       s.now(),
	})

	return s.Reload(ctx)
}

func (s *Service) push(a entities.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed := make([]entities.Activity, 0, FeedSize)
	feed = append(feed, a)
	for _, prev := range s.feed {
		if len(feed) == FeedSize {
			break
		}
		feed = append(feed, prev)
	}
	s.feed = feed
}

func (s *Service) Open() { s.stats.Reopen() }

// Close лента живёт только пока страница смонтирована.
func (s *Service) Close() {
	s.stats.Close()

	s.mu.Lock()
	s.feed = nil
	s.mu.Unlock()
}
