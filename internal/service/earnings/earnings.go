package earnings

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
	// PayoutLockTTL сколько держится блокировка, если отправка зависла.
	PayoutLockTTL time.Duration
}

type data struct {
	drivers []entities.DriverEarningSummary
	stats   *entities.DriverEarningStats
}

type View struct {
	Drivers            []entities.DriverEarningSummary `json:"drivers"`
	Stats              *entities.DriverEarningStats    `json:"stats,omitempty"`
	SelectedDriverIDs  []int64                         `json:"selected_driver_ids"`
	SelectedTotal      decimal.Decimal                 `json:"selected_total"`
	MissingBankDetails int                             `json:"missing_bank_details"`
	UpdatedAt          time.Time                       `json:"updated_at"`
}

type Service struct {
	log      logger.Logger
	earnings EarningsGateway
	drivers  DriverGateway
	guard    PayoutGuard
	lockTTL  time.Duration

	store     *snapshot.Store[data]
	selection *selection.Set[int64]
}

func New(log logger.Logger, earnings EarningsGateway, drivers DriverGateway, guard PayoutGuard, cfg Config) *Service {
	ttl := cfg.PayoutLockTTL
	if ttl <= 0 {
		ttl = defaultPayoutLockTTL
	}
	return &Service{
		log:       log.With(logger.NewField("view", "earnings")),
		earnings:  earnings,
		drivers:   drivers,
		guard:     guard,
		lockTTL:   ttl,
		store:     snapshot.New[data](),
		selection: selection.New[int64](),
	}
}

func (s *Service) View() View {
	d, at := s.store.Load()

	missing := 0
	for _, drv := range d.drivers {
		if drv.TotalPendingEarnings.IsPositive() && !drv.HasBankDetails {
			missing++
		}
	}

	drivers := d.drivers
	if drivers == nil {
		drivers = []entities.DriverEarningSummary{}
	}
	return View{
		Drivers:            drivers,
		Stats:              d.stats,
		SelectedDriverIDs:  s.selection.IDs(),
		SelectedTotal:      s.SelectedTotal(),
		MissingBankDetails: missing,
		UpdatedAt:          at,
	}
}

// Reload сводка по водителям и статистика загружаются параллельно.
func (s *Service) Reload(ctx context.Context) error {
	ticket := s.store.Begin()

	var next data
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		drivers, err := s.earnings.ListDriverEarnings(gctx)
		if err != nil {
			return fmt.Errorf("list driver earnings: %w", err)
		}
		next.drivers = drivers
		return nil
	})
	g.Go(func() error {
		stats, err := s.earnings.GetDriverEarningStats(gctx)
		if err != nil {
			return fmt.Errorf("get earnings stats: %w", err)
		}
		next.stats = stats
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if s.store.Apply(ticket, next) {
		ids := make([]int64, 0, len(next.drivers))
		for _, d := range next.drivers {
			ids = append(ids, d.DriverID)
		}
		s.selection.Retain(ids)
	}
	return nil
}

// ToggleDriver отмечает водителя из загруженного списка.
func (s *Service) ToggleDriver(driverID int64) (bool, error) {
	if !slices.ContainsFunc(s.store.Value().drivers, func(d entities.DriverEarningSummary) bool {
		return d.DriverID == driverID
	}) {
		return false, fmt.Errorf("%w: %d", ErrUnknownDriver, driverID)
	}
	return s.selection.Toggle(driverID), nil
}

// SelectAllEligible выбирает всех водителей с ожидающей выплатой и реквизитами,
// повторный вызов снимает выбор.
func (s *Service) SelectAllEligible() bool {
	var eligible []int64
	for _, d := range s.store.Value().drivers {
		if d.PayoutEligible() {
			eligible = append(eligible, d.DriverID)
		}
	}
	return s.selection.ToggleAll(eligible)
}

func (s *Service) ClearSelection() {
	s.selection.Clear()
}

func (s *Service) SelectedTotal() decimal.Decimal {
	selected := s.selectedSummaries()
	return entities.SumMoney(selected, func(d entities.DriverEarningSummary) decimal.Decimal {
		return d.TotalPendingEarnings
	})
}

// ProcessPayout выплачивает выбранным водителям. Водители без реквизитов
// отклоняются до обращения к backend, повторная отправка того же набора
// блокируется, пока первая не завершилась.
func (s *Service) ProcessPayout(ctx context.Context, form entities.PayoutForm) (*entities.DriverPayoutResult, error) {
	ids := s.selection.IDs()
	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}

	var missing []string
	known := make(map[int64]struct{}, len(ids))
	for _, d := range s.selectedSummaries() {
		known[d.DriverID] = struct{}{}
		if !d.HasBankDetails {
			missing = append(missing, d.DriverName)
		}
	}
	// выбранные, но пропавшие из списка: реквизиты проверить нечем
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, "driver #"+strconv.FormatInt(id, 10))
		}
	}
	if len(missing) > 0 {
		return nil, &MissingBankDetailsError{Drivers: missing}
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

	res, err := s.earnings.ProcessDriverPayout(ctx, entities.DriverPayoutRequest{
		DriverIDs:        ids,
		PaymentMethod:    method,
		PaymentReference: optional(form.PaymentReference),
		Notes:            optional(form.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("process driver payout: %w", err)
	}

	s.log.Info("driver payout processed",
		logger.NewField("drivers_paid", res.TotalDriversPaid),
		logger.NewField("amount", res.TotalAmountPaid.String()),
	)
	s.selection.Clear()
	s.refresh(ctx)
	return res, nil
}

// Detail начисления водителя, отфильтрованные по earned_at.
func (s *Service) Detail(ctx context.Context, driverID int64, showPaid bool, r daterange.Range) (*entities.DriverEarningsDetail, error) {
	if driverID <= 0 {
		return nil, ErrDriverRequired
	}
	detail, err := s.earnings.GetDriverEarnings(ctx, driverID, showPaid)
	if err != nil {
		return nil, fmt.Errorf("get driver %d earnings: %w", driverID, err)
	}

	detail.Earnings = daterange.Filter(detail.Earnings, func(e entities.DriverEarning) time.Time {
		return e.EarnedAt
	}, r)
	return detail, nil
}

func (s *Service) UpdateBankDetails(ctx context.Context, driverID int64, bank entities.BankDetails) (*entities.Driver, error) {
	if driverID <= 0 {
		return nil, ErrDriverRequired
	}
	if !bank.Provided() {
		return nil, ErrBankDetails
	}

	driver, err := s.drivers.UpdateDriverBankDetails(ctx, driverID, bank)
	if err != nil {
		return nil, fmt.Errorf("update driver %d bank details: %w", driverID, err)
	}

	s.log.Info("driver bank details updated", logger.NewField("driver_id", driverID))
	s.refresh(ctx)
	return driver, nil
}

func (s *Service) Open() { s.store.Reopen() }

func (s *Service) Close() {
	s.store.Close()
	s.selection.Clear()
}

func (s *Service) selectedSummaries() []entities.DriverEarningSummary {
	drivers := s.store.Value().drivers
	out := make([]entities.DriverEarningSummary, 0, s.selection.Len())
	for _, d := range drivers {
		if s.selection.Has(d.DriverID) {
			out = append(out, d)
		}
	}
	return out
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
	return "driver-payout:" + strings.Join(parts, ",")
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
