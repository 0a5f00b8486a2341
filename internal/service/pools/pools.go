package pools

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/realtime"
	"khaogully-admin/pkg/selection"
	"khaogully-admin/pkg/snapshot"
)

type View struct {
	Status    entities.PoolStatus `json:"status_filter,omitempty"`
	Pools     []entities.Pool     `json:"pools"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Selected выбранный пул, его заказы и отмеченные для назначения заказы.
type Selected struct {
	PoolID           int64                `json:"pool_id"`
	Pool             *entities.PoolOrders `json:"pool,omitempty"`
	SelectedOrderIDs []int64              `json:"selected_order_ids"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

type Service struct {
	log     logger.Logger
	pools   PoolGateway
	drivers DriverGateway

	list   *snapshot.Store[View]
	filter *snapshot.Store[entities.PoolFilter]

	// mu защищает смену выбранного пула
	mu         sync.Mutex
	selectedID int64
	orders     *snapshot.Store[*entities.PoolOrders]
	selection  *selection.Set[int64]
}

func New(log logger.Logger, pools PoolGateway, drivers DriverGateway) *Service {
	return &Service{
		log:       log.With(logger.NewField("view", "pools")),
		pools:     pools,
		drivers:   drivers,
		list:      snapshot.New[View](),
		filter:    snapshot.New[entities.PoolFilter](),
		orders:    snapshot.New[*entities.PoolOrders](),
		selection: selection.New[int64](),
	}
}

func (s *Service) View() View {
	v, at := s.list.Load()
	v.UpdatedAt = at
	if v.Pools == nil {
		v.Pools = []entities.Pool{}
	}
	return v
}

func (s *Service) SetStatusFilter(ctx context.Context, status entities.PoolStatus) error {
	s.filter.Apply(s.filter.Begin(), entities.PoolFilter{Status: status})
	return s.Reload(ctx)
}

func (s *Service) Reload(ctx context.Context) error {
	filter := s.filter.Value()
	ticket := s.list.Begin()

	pools, err := s.pools.ListPools(ctx, filter)
	if err != nil {
		return fmt.Errorf("list pools: %w", err)
	}
	if !s.list.Apply(ticket, View{Status: filter.Status, Pools: pools}) {
		s.log.Debug("stale pools response dropped")
	}
	return nil
}

// Detail пул с группами водителей и маршрутами.
func (s *Service) Detail(ctx context.Context, poolID int64) (*entities.PoolDetail, error) {
	if poolID <= 0 {
		return nil, ErrPoolRequired
	}
	detail, err := s.pools.GetPool(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("get pool %d: %w", poolID, err)
	}
	return detail, nil
}

// Group запускает группировку заказов пула и возвращает обновлённый пул.
func (s *Service) Group(ctx context.Context, poolID int64) (*entities.PoolDetail, error) {
	if poolID <= 0 {
		return nil, ErrPoolRequired
	}
	if err := s.pools.GroupPool(ctx, poolID); err != nil {
		return nil, fmt.Errorf("group pool %d: %w", poolID, err)
	}
	s.log.Info("pool grouped", logger.NewField("pool_id", poolID))

	s.refresh(ctx)
	return s.Detail(ctx, poolID)
}

func (s *Service) AssignGroup(ctx context.Context, poolID, groupID, driverID int64) (*entities.ActionResult, error) {
	switch {
	case poolID <= 0:
		return nil, ErrPoolRequired
	case groupID <= 0:
		return nil, ErrGroupRequired
	case driverID <= 0:
		return nil, ErrDriverRequired
	}

	res, err := s.pools.AssignPoolGroup(ctx, poolID, groupID, driverID)
	if err != nil {
		return nil, fmt.Errorf("assign group %d of pool %d: %w", groupID, poolID, err)
	}
	s.log.Info("pool group assigned",
		logger.NewField("pool_id", poolID),
		logger.NewField("group_id", groupID),
		logger.NewField("driver_id", driverID),
	)

	s.refresh(ctx)
	return res, nil
}

// Sync неуспешная синхронизация не ошибка: сообщение backend
// возвращается в результате, список не перезагружается.
func (s *Service) Sync(ctx context.Context, req *entities.PoolSyncRequest) (*entities.PoolSyncResult, error) {
	body := entities.DefaultPoolSyncRequest()
	if req != nil {
		body = *req
	}

	res, err := s.pools.SyncPools(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("sync pools: %w", err)
	}
	if !res.Success {
		s.log.Warn("pool sync reported failure",
			logger.NewField("message", res.Message),
			logger.NewField("backend_error", res.Error),
		)
		return res, nil
	}

	s.log.Info("pools synced", logger.NewField("orders_synced", res.OrdersSynced))
	s.refresh(ctx)
	return res, nil
}

func (s *Service) TriggerSync(ctx context.Context) (*entities.TriggerSyncResult, error) {
	res, err := s.pools.TriggerSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("trigger sync: %w", err)
	}
	s.log.Info("sync triggered",
		logger.NewField("synced", res.Details.Synced),
		logger.NewField("skipped", res.Details.Skipped),
		logger.NewField("errors", res.Details.Errors),
	)

	s.refresh(ctx)
	return res, nil
}

func (s *Service) AvailableDrivers(ctx context.Context) ([]entities.AvailableDriver, error) {
	drivers, err := s.drivers.ListAvailableDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available drivers: %w", err)
	}
	return drivers, nil
}

// ApprovedDrivers кандидаты для назначения на группу пула.
func (s *Service) ApprovedDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.drivers.ListDrivers(ctx, entities.DriverFilter{})
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	approved := make([]entities.Driver, 0, len(drivers))
	for _, d := range drivers {
		if d.Status.Is(entities.DriverStatusApproved) {
			approved = append(approved, d)
		}
	}
	return approved, nil
}

// SelectPool открывает заказы пула и сбрасывает отметки.
func (s *Service) SelectPool(ctx context.Context, poolID int64) (Selected, error) {
	if poolID <= 0 {
		return Selected{}, ErrPoolRequired
	}

	s.mu.Lock()
	if s.selectedID != poolID {
		s.selectedID = poolID
		s.selection.Clear()
		s.orders.Apply(s.orders.Begin(), nil)
	}
	s.mu.Unlock()

	if err := s.ReloadSelected(ctx); err != nil {
		return Selected{}, err
	}
	return s.Selected(), nil
}

func (s *Service) Selected() Selected {
	s.mu.Lock()
	poolID := s.selectedID
	s.mu.Unlock()

	pool, at := s.orders.Load()
	return Selected{
		PoolID:           poolID,
		Pool:             pool,
		SelectedOrderIDs: s.selection.IDs(),
		UpdatedAt:        at,
	}
}

// ReloadSelected перезагружает заказы выбранного пула. Отметки с заказов,
// которых больше нет в пуле, снимаются.
func (s *Service) ReloadSelected(ctx context.Context) error {
	s.mu.Lock()
	poolID := s.selectedID
	s.mu.Unlock()
	if poolID == 0 {
		return nil
	}

	ticket := s.orders.Begin()
	orders, err := s.pools.GetPoolOrders(ctx, poolID)
	if err != nil {
		return fmt.Errorf("get pool %d orders: %w", poolID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID != poolID {
		return nil
	}
	if s.orders.Apply(ticket, orders) {
		ids := make([]int64, 0, len(orders.Orders))
		for _, o := range orders.Orders {
			ids = append(ids, o.OrderID)
		}
		s.selection.Retain(ids)
	}
	return nil
}

func (s *Service) ToggleOrder(poolID, orderID int64) (bool, error) {
	if err := s.requireSelected(poolID); err != nil {
		return false, err
	}
	return s.selection.Toggle(orderID), nil
}

// ToggleUnassigned отмечает все заказы пула без водителя или снимает отметки.
func (s *Service) ToggleUnassigned(poolID int64) (bool, error) {
	if err := s.requireSelected(poolID); err != nil {
		return false, err
	}

	var eligible []int64
	if pool := s.orders.Value(); pool != nil {
		for _, o := range pool.Orders {
			if o.DriverID == nil {
				eligible = append(eligible, o.OrderID)
			}
		}
	}
	return s.selection.ToggleAll(eligible), nil
}

// AssignSelected назначает водителя на отмеченные заказы выбранного пула.
func (s *Service) AssignSelected(ctx context.Context, poolID, driverID int64, earnings *decimal.Decimal) (*entities.ActionResult, error) {
	if err := s.requireSelected(poolID); err != nil {
		return nil, err
	}
	orderIDs := s.selection.IDs()
	switch {
	case len(orderIDs) == 0:
		return nil, ErrNothingSelected
	case driverID <= 0:
		return nil, ErrDriverRequired
	case earnings != nil && earnings.IsNegative():
		return nil, ErrNegativeEarnings
	}

	res, err := s.pools.AssignPoolDriver(ctx, poolID, entities.PoolDriverAssignment{
		OrderIDs:       orderIDs,
		DriverID:       driverID,
		DriverEarnings: earnings,
	})
	if err != nil {
		return nil, fmt.Errorf("assign driver to pool %d: %w", poolID, err)
	}
	s.log.Info("driver assigned to pool orders",
		logger.NewField("pool_id", poolID),
		logger.NewField("driver_id", driverID),
		logger.NewField("orders", len(orderIDs)),
	)

	s.selection.Clear()
	s.reloadAll(ctx)
	return res, nil
}

// OnOrderUpdate обработчик order_update и order_status_update.
func (s *Service) OnOrderUpdate(ctx context.Context, _ realtime.Event) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.ReloadSelected(gctx) })
	g.Go(func() error { return s.Reload(gctx) })
	return g.Wait()
}

func (s *Service) Open() {
	s.list.Reopen()
	s.orders.Reopen()
}

func (s *Service) Close() {
	s.list.Close()
	s.orders.Close()

	s.mu.Lock()
	s.selectedID = 0
	s.selection.Clear()
	s.mu.Unlock()
}

func (s *Service) requireSelected(poolID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.selectedID == 0:
		return ErrNoPoolSelected
	case poolID != s.selectedID:
		return ErrPoolNotSelected
	}
	return nil
}

func (s *Service) refresh(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.log.Warn("reload after action failed", logger.NewField("error", err))
	}
}

func (s *Service) reloadAll(ctx context.Context) {
	if err := s.OnOrderUpdate(ctx, realtime.Event{}); err != nil {
		s.log.Warn("reload after action failed", logger.NewField("error", err))
	}
}
