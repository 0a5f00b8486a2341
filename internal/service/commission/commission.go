package commission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/snapshot"
)

var (
	minPercentage = decimal.Zero
	maxPercentage = decimal.NewFromInt(100)
)

type View struct {
	Rates       []entities.CommissionRate           `json:"rates"`
	Restaurants []entities.RestaurantWithCommission `json:"restaurants"`
	AverageRate decimal.Decimal                     `json:"average_rate"`
	DefaultRate *entities.CommissionRate            `json:"default_rate,omitempty"`
	UpdatedAt   time.Time                           `json:"updated_at"`
}

type data struct {
	rates       []entities.CommissionRate
	restaurants []entities.RestaurantWithCommission
}

type Service struct {
	log   logger.Logger
	gw    CommissionGateway
	store *snapshot.Store[data]
	now   func() time.Time
}

func New(log logger.Logger, gw CommissionGateway) *Service {
	return &Service{
		log:   log.With(logger.NewField("view", "commission")),
		gw:    gw,
		store: snapshot.New[data](),
		now:   time.Now,
	}
}

func (s *Service) View() View {
	d, at := s.store.Load()

	view := View{
		Rates:       d.rates,
		Restaurants: d.restaurants,
		AverageRate: averageRate(d.rates),
		UpdatedAt:   at,
	}
	if view.Rates == nil {
		view.Rates = []entities.CommissionRate{}
	}
	if view.Restaurants == nil {
		view.Restaurants = []entities.RestaurantWithCommission{}
	}
	for i := range d.rates {
		if d.rates[i].IsDefault {
			rate := d.rates[i]
			view.DefaultRate = &rate
			break
		}
	}
	return view
}

func (s *Service) Reload(ctx context.Context) error {
	ticket := s.store.Begin()

	var next data
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rates, err := s.gw.ListCommissionRates(gctx, false)
		if err != nil {
			return fmt.Errorf("list commission rates: %w", err)
		}
		next.rates = rates
		return nil
	})
	g.Go(func() error {
		restaurants, err := s.gw.ListRestaurantCommissions(gctx)
		if err != nil {
			return fmt.Errorf("list restaurant commissions: %w", err)
		}
		next.restaurants = restaurants
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.store.Apply(ticket, next)
	return nil
}

func (s *Service) CreateRate(ctx context.Context, rate entities.CommissionRateCreate) (*entities.CommissionRate, error) {
	rate.RateName = strings.TrimSpace(rate.RateName)
	if rate.RateName == "" {
		return nil, ErrRateName
	}
	if err := checkPercentage(rate.RatePercentage); err != nil {
		return nil, err
	}
	if rate.IsActive == nil {
		rate.IsActive = pointer.To(true)
	}

	created, err := s.gw.CreateCommissionRate(ctx, rate)
	if err != nil {
		return nil, fmt.Errorf("create commission rate: %w", err)
	}

	s.log.Info("commission rate created",
		logger.NewField("rate_id", created.ID),
		logger.NewField("percentage", created.RatePercentage.String()),
	)
	s.refresh(ctx)
	return created, nil
}

func (s *Service) UpdateRate(ctx context.Context, rateID int64, update entities.CommissionRateUpdate) (*entities.CommissionRate, error) {
	if rateID <= 0 {
		return nil, ErrRateRequired
	}
	if update == (entities.CommissionRateUpdate{}) {
		return nil, ErrEmptyUpdate
	}
	if update.RateName != nil {
		name := strings.TrimSpace(*update.RateName)
		if name == "" {
			return nil, ErrRateName
		}
		update.RateName = &name
	}
	if update.RatePercentage != nil {
		if err := checkPercentage(*update.RatePercentage); err != nil {
			return nil, err
		}
	}

	updated, err := s.gw.UpdateCommissionRate(ctx, rateID, update)
	if err != nil {
		return nil, fmt.Errorf("update commission rate %d: %w", rateID, err)
	}

	s.log.Info("commission rate updated", logger.NewField("rate_id", rateID))
	s.refresh(ctx)
	return updated, nil
}

// DeleteRate backend выполняет мягкое удаление.
func (s *Service) DeleteRate(ctx context.Context, rateID int64) error {
	if rateID <= 0 {
		return ErrRateRequired
	}
	if err := s.gw.DeleteCommissionRate(ctx, rateID); err != nil {
		return fmt.Errorf("delete commission rate %d: %w", rateID, err)
	}

	s.log.Info("commission rate deleted", logger.NewField("rate_id", rateID))
	s.refresh(ctx)
	return nil
}

// ToggleActive инвертирует is_active относительно последнего загруженного состояния.
func (s *Service) ToggleActive(ctx context.Context, rateID int64) (*entities.CommissionRate, error) {
	var current *entities.CommissionRate
	for _, r := range s.store.Value().rates {
		if r.ID == rateID {
			current = &r
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("%w: id %d", ErrRateNotFound, rateID)
	}

	return s.UpdateRate(ctx, rateID, entities.CommissionRateUpdate{IsActive: pointer.To(!current.IsActive)})
}

func (s *Service) AssignRate(ctx context.Context, restaurantID, rateID int64) (*entities.RestaurantCommissionAssignment, error) {
	if restaurantID <= 0 {
		return nil, ErrRestaurantRequired
	}
	if rateID <= 0 {
		return nil, ErrRateRequired
	}

	notes := "Assigned via Commission Settings on " + s.now().Format(time.DateOnly)
	res, err := s.gw.AssignRestaurantCommission(ctx, entities.AssignCommissionRequest{
		RestaurantID:     restaurantID,
		CommissionRateID: rateID,
		Notes:            &notes,
	})
	if err != nil {
		return nil, fmt.Errorf("assign commission rate %d to restaurant %d: %w", rateID, restaurantID, err)
	}

	s.log.Info("commission rate assigned",
		logger.NewField("restaurant_id", restaurantID),
		logger.NewField("rate_id", rateID),
	)
	s.refresh(ctx)
	return res, nil
}

func (s *Service) ChangeRate(ctx context.Context, restaurantID, rateID int64, notes string) (*entities.RestaurantCommissionAssignment, error) {
	if restaurantID <= 0 {
		return nil, ErrRestaurantRequired
	}
	if rateID <= 0 {
		return nil, ErrRateRequired
	}

	req := entities.ChangeCommissionRequest{CommissionRateID: rateID}
	if notes = strings.TrimSpace(notes); notes != "" {
		req.Notes = &notes
	}
	res, err := s.gw.ChangeRestaurantCommission(ctx, restaurantID, req)
	if err != nil {
		return nil, fmt.Errorf("change commission of restaurant %d: %w", restaurantID, err)
	}

	s.log.Info("commission rate changed",
		logger.NewField("restaurant_id", restaurantID),
		logger.NewField("rate_id", rateID),
	)
	s.refresh(ctx)
	return res, nil
}

func (s *Service) History(ctx context.Context, restaurantID int64) ([]entities.CommissionHistory, error) {
	if restaurantID <= 0 {
		return nil, ErrRestaurantRequired
	}
	history, err := s.gw.GetRestaurantCommissionHistory(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get commission history of restaurant %d: %w", restaurantID, err)
	}
	if history == nil {
		history = []entities.CommissionHistory{}
	}
	return history, nil
}

func (s *Service) PlatformConfig(ctx context.Context) (*entities.PlatformConfig, error) {
	cfg, err := s.gw.GetPlatformConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get platform config: %w", err)
	}
	return cfg, nil
}

func (s *Service) UpdatePlatformConfig(ctx context.Context, update entities.PlatformConfigUpdate) (*entities.PlatformConfig, error) {
	update.ConfigKey = strings.TrimSpace(update.ConfigKey)
	if update.ConfigKey == "" || len(update.ConfigValue) == 0 {
		return nil, ErrConfigKey
	}

	cfg, err := s.gw.UpdatePlatformConfig(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("update platform config: %w", err)
	}

	s.log.Info("platform config updated", logger.NewField("key", update.ConfigKey))
	s.refresh(ctx)
	return cfg, nil
}

func (s *Service) Open() { s.store.Reopen() }

func (s *Service) Close() { s.store.Close() }

func (s *Service) refresh(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.log.Warn("reload after action failed", logger.NewField("error", err))
	}
}

func checkPercentage(pct decimal.Decimal) error {
	if pct.LessThan(minPercentage) || pct.GreaterThan(maxPercentage) {
		return fmt.Errorf("%w: got %s", ErrRatePercentage, pct)
	}
	return nil
}

func averageRate(rates []entities.CommissionRate) decimal.Decimal {
	if len(rates) == 0 {
		return decimal.Zero
	}
	sum := entities.SumMoney(rates, func(r entities.CommissionRate) decimal.Decimal { return r.RatePercentage })
	return sum.Div(decimal.NewFromInt(int64(len(rates)))).Round(1)
}
