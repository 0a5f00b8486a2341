package restaurantpayments

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/daterange"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/selection"
	"khaogully-admin/pkg/snapshot"
	"khaogully-admin/pkg/submitguard"
)

const defaultPayoutLockTTL = 2 * time.Minute

type Config struct {
	PayoutLockTTL time.Duration
}

type data struct {
	status      entities.RestaurantEarningStatus
	restaurants []entities.RestaurantEarningSummary
	stats       *entities.RestaurantEarningStats
	rates       []entities.CommissionRate
}

type View struct {
	Status        entities.RestaurantEarningStatus    `json:"status_filter"`
	Restaurants   []entities.RestaurantEarningSummary `json:"restaurants"`
	Stats         *entities.RestaurantEarningStats    `json:"stats,omitempty"`
	ActiveRates   []entities.CommissionRate           `json:"active_commission_rates"`
	SelectedIDs   []int64                             `json:"selected_restaurant_ids"`
	SelectedTotal decimal.Decimal                     `json:"selected_total"`
	UpdatedAt     time.Time                           `json:"updated_at"`
}

type Service struct {
	log         logger.Logger
	earnings    EarningsGateway
	restaurants RestaurantGateway
	commission  CommissionGateway
	guard       PayoutGuard
	lockTTL     time.Duration

	store     *snapshot.Store[data]
	filter    *snapshot.Store[entities.RestaurantEarningStatus]
	selection *selection.Set[int64]
}

func New(
	log logger.Logger,
	earnings EarningsGateway,
	restaurants RestaurantGateway,
	commission CommissionGateway,
	guard PayoutGuard,
	cfg Config,
) *Service {
	ttl := cfg.PayoutLockTTL
	if ttl <= 0 {
		ttl = defaultPayoutLockTTL
	}

	filter := snapshot.New[entities.RestaurantEarningStatus]()
	filter.Apply(filter.Begin(), entities.RestaurantEarningPending)

	return &Service{
		log:         log.With(logger.NewField("view", "restaurant_payments")),
		earnings:    earnings,
		restaurants: restaurants,
		commission:  commission,
		guard:       guard,
		lockTTL:     ttl,
		store:       snapshot.New[data](),
		filter:      filter,
		selection:   selection.New[int64](),
	}
}

func (s *Service) View() View {
	d, at := s.store.Load()

	restaurants := d.restaurants
	if restaurants == nil {
		restaurants = []entities.RestaurantEarningSummary{}
	}
	rates := d.rates
	if rates == nil {
		rates = []entities.CommissionRate{}
	}
	status := d.status
	if status == "" {
		status = s.filter.Value()
	}

	return View{
		Status:        status,
		Restaurants:   restaurants,
		Stats:         d.stats,
		ActiveRates:   rates,
		SelectedIDs:   s.selection.IDs(),
		SelectedTotal: s.SelectedTotal(),
		UpdatedAt:     at,
	}
}

func (s *Service) SetStatusFilter(ctx context.Context, status entities.RestaurantEarningStatus) error {
	switch status {
	case entities.RestaurantEarningPending, entities.RestaurantEarningPaid, entities.RestaurantEarningAll:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidStatus, status)
	}
	s.filter.Apply(s.filter.Begin(), status)
	return s.Reload(ctx)
}

// Reload статистика, рестораны и активные ставки комиссии загружаются параллельно.
func (s *Service) Reload(ctx context.Context) error {
	status := s.filter.Value()
	ticket := s.store.Begin()

	next := data{status: status}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.earnings.GetRestaurantEarningStats(gctx)
		if err != nil {
			return fmt.Errorf("get restaurant earnings stats: %w", err)
		}
		next.stats = stats
		return nil
	})
	g.Go(func() error {
		restaurants, err := s.earnings.ListRestaurantEarnings(gctx, status)
		if err != nil {
			return fmt.Errorf("list restaurant earnings: %w", err)
		}
		next.restaurants = restaurants
		return nil
	})
	g.Go(func() error {
		rates, err := s.commission.ListCommissionRates(gctx, true)
		if err != nil {
			return fmt.Errorf("list active commission rates: %w", err)
		}
		next.rates = rates
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if s.store.Apply(ticket, next) {
		ids := make([]int64, 0, len(next.restaurants))
		for _, r := range next.restaurants {
			ids = append(ids, r.RestaurantID)
		}
		s.selection.Retain(ids)
	}
	return nil
}

// ToggleRestaurant отмечает ресторан из загруженного списка.
func (s *Service) ToggleRestaurant(restaurantID int64) (bool, error) {
	if !slices.ContainsFunc(s.store.Value().restaurants, func(r entities.RestaurantEarningSummary) bool {
		return r.RestaurantID == restaurantID
	}) {
		return false, fmt.Errorf("%w: %d", ErrUnknownRestaurant, restaurantID)
	}
	return s.selection.Toggle(restaurantID), nil
}

// SelectAll выбирает все рестораны списка, повторный вызов снимает выбор.
func (s *Service) SelectAll() bool {
	restaurants := s.store.Value().restaurants
	ids := make([]int64, 0, len(restaurants))
	for _, r := range restaurants {
		ids = append(ids, r.RestaurantID)
	}
	return s.selection.ToggleAll(ids)
}

func (s *Service) ClearSelection() {
	s.selection.Clear()
}

func (s *Service) SelectedTotal() decimal.Decimal {
	var selected []entities.RestaurantEarningSummary
	for _, r := range s.store.Value().restaurants {
		if s.selection.Has(r.RestaurantID) {
			selected = append(selected, r)
		}
	}
	return entities.SumMoney(selected, func(r entities.RestaurantEarningSummary) decimal.Decimal {
		return r.TotalPendingEarnings
	})
}

func (s *Service) ProcessPayout(ctx context.Context, form entities.PayoutForm) (*entities.RestaurantPayoutResult, error) {
	ids := s.selection.IDs()
	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}
	reference := strings.TrimSpace(form.PaymentReference)
	if reference == "" {
		return nil, ErrReferenceRequired
	}

	release, err := s.guard.Acquire(ctx, payoutKey(ids), s.lockTTL)
	if err != nil {
		if errors.Is(err, submitguard.ErrInFlight) {
			return nil, ErrPayoutInFlight
		}
		return nil, fmt.Errorf("acquire payout lock: %w", err)
	}
	defer release(context.WithoutCancel(ctx))

	method := strings.TrimSpace(form.PaymentMethod)
	if method == "" {
		method = entities.DefaultPaymentMethod
	}

	var notes *string
	if n := strings.TrimSpace(form.Notes); n != "" {
		notes = &n
	}

	res, err := s.earnings.ProcessRestaurantPayout(ctx, entities.RestaurantPayoutRequest{
		RestaurantIDs:    ids,
		PaymentMethod:    method,
		PaymentReference: reference,
		Notes:            notes,
	})
	if err != nil {
		return nil, fmt.Errorf("process restaurant payout: %w", err)
	}

	if !res.Success {
		s.log.Warn("restaurant payout completed with issues",
			logger.NewField("message", res.Message),
			logger.NewField("failed", len(res.FailedRestaurants)),
		)
		s.refresh(ctx)
		return res, &PayoutIssuesError{Result: res}
	}

	s.log.Info("restaurant payout processed",
		logger.NewField("restaurants_paid", res.TotalRestaurantsPaid),
		logger.NewField("amount", res.TotalAmountPaid.String()),
	)
	s.selection.Clear()
	s.refresh(ctx)
	return res, nil
}

// Detail начисления ресторана, включая выплаченные, в пределах диапазона дат.
func (s *Service) Detail(ctx context.Context, restaurantID int64, r daterange.Range) (*entities.RestaurantEarningsDetail, error) {
	if restaurantID <= 0 {
		return nil, ErrRestaurantRequired
	}
	detail, err := s.earnings.GetRestaurantEarnings(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get restaurant %d earnings: %w", restaurantID, err)
	}

	detail.Earnings = daterange.Filter(detail.Earnings, func(e entities.RestaurantEarning) time.Time {
		return e.EarnedAt
	}, r)
	return detail, nil
}

func (s *Service) UpdateBankDetails(ctx context.Context, restaurantID int64, bank entities.BankDetails) error {
	if restaurantID <= 0 {
		return ErrRestaurantRequired
	}
	if !bank.Provided() {
		return ErrBankDetails
	}
	if err := s.restaurants.UpdateRestaurant(ctx, restaurantID, entities.RestaurantUpdate{BankDetails: bank}); err != nil {
		return fmt.Errorf("update restaurant %d bank details: %w", restaurantID, err)
	}

	s.log.Info("restaurant bank details updated", logger.NewField("restaurant_id", restaurantID))
	s.refresh(ctx)
	return nil
}

// UpdateContact телефон обязателен: без него портал не принимает синхронизацию.
func (s *Service) UpdateContact(ctx context.Context, restaurantID int64, phone, email string) error {
	if restaurantID <= 0 {
		return ErrRestaurantRequired
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneRequired
	}

	update := entities.RestaurantUpdate{Phone: &phone}
	if email = strings.TrimSpace(email); email != "" {
		update.Email = &email
	}
	if err := s.restaurants.UpdateRestaurant(ctx, restaurantID, update); err != nil {
		return fmt.Errorf("update restaurant %d contact: %w", restaurantID, err)
	}

	s.log.Info("restaurant contact updated", logger.NewField("restaurant_id", restaurantID))
	s.refresh(ctx)
	return nil
}

func (s *Service) SyncToPortal(ctx context.Context, restaurantID int64) (*entities.PortalSyncResult, error) {
	if restaurantID <= 0 {
		return nil, ErrRestaurantRequired
	}
	res, err := s.earnings.SyncRestaurantPortal(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("sync restaurant %d to portal: %w", restaurantID, err)
	}
	if !res.Success {
		return res, &PortalSyncError{Message: res.Message}
	}

	s.log.Info("restaurant synced to portal",
		logger.NewField("restaurant_id", restaurantID),
		logger.NewField("orders", res.DataSummary.TotalCompletedOrders),
	)
	return res, nil
}

func (s *Service) AssignCommission(ctx context.Context, restaurantID, rateID int64, notes string) (*entities.RestaurantCommissionAssignment, error) {
	if restaurantID <= 0 {
		return nil, ErrRestaurantRequired
	}
	if rateID <= 0 {
		return nil, ErrRateRequired
	}

	req := entities.AssignCommissionRequest{RestaurantID: restaurantID, CommissionRateID: rateID}
	if notes = strings.TrimSpace(notes); notes != "" {
		req.Notes = &notes
	}

	res, err := s.commission.AssignRestaurantCommission(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("assign commission to restaurant %d: %w", restaurantID, err)
	}

	s.log.Info("commission rate assigned",
		logger.NewField("restaurant_id", restaurantID),
		logger.NewField("rate_id", rateID),
	)
	s.refresh(ctx)
	return res, nil
}

func (s *Service) Open() { s.store.Reopen() }

func (s *Service) Close() {
	s.store.Close()
	s.selection.Clear()
}

func (s *Service) refresh(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.log.Warn("reload after action failed", logger.NewField("error", err))
	}
}

func payoutKey(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "restaurant-payout:" + strings.Join(parts, ",")
}
