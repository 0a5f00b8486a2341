package drivers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/snapshot"
)

type View struct {
	Status    entities.DriverStatus `json:"status_filter,omitempty"`
	Drivers   []entities.Driver     `json:"drivers"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type Service struct {
	log     logger.Logger
	drivers DriverGateway

	list   *snapshot.Store[View]
	filter *snapshot.Store[entities.DriverFilter]
}

func New(log logger.Logger, drivers DriverGateway) *Service {
	return &Service{
		log:     log.With(logger.NewField("view", "drivers")),
		drivers: drivers,
		list:    snapshot.New[View](),
		filter:  snapshot.New[entities.DriverFilter](),
	}
}

func (s *Service) View() View {
	v, at := s.list.Load()
	v.UpdatedAt = at
	if v.Drivers == nil {
		v.Drivers = []entities.Driver{}
	}
	return v
}

func (s *Service) SetStatusFilter(ctx context.Context, status entities.DriverStatus) error {
	s.filter.Apply(s.filter.Begin(), entities.DriverFilter{Status: status})
	return s.Reload(ctx)
}

func (s *Service) Reload(ctx context.Context) error {
	filter := s.filter.Value()
	ticket := s.list.Begin()

	drivers, err := s.drivers.ListDrivers(ctx, filter)
	if err != nil {
		return fmt.Errorf("list drivers: %w", err)
	}

	if !s.list.Apply(ticket, View{Status: filter.Status, Drivers: drivers}) {
		s.log.Debug("stale drivers response dropped")
	}
	return nil
}

// UpdateStatus одобрить, заблокировать или вернуть водителя на проверку.
func (s *Service) UpdateStatus(ctx context.Context, driverID int64, status entities.DriverStatus) error {
	if driverID <= 0 {
		return ErrDriverRequired
	}
	if !status.Settable() {
		return fmt.Errorf("%w: got %q", ErrInvalidStatus, status)
	}

	status = entities.DriverStatus(strings.ToLower(string(status)))
	if err := s.drivers.UpdateDriverStatus(ctx, driverID, status); err != nil {
		return fmt.Errorf("update driver %d status: %w", driverID, err)
	}

	s.log.Info("driver status updated",
		logger.NewField("driver_id", driverID),
		logger.NewField("status", status),
	)
	s.refresh(ctx)
	return nil
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

func (s *Service) Open()  { s.list.Reopen() }
func (s *Service) Close() { s.list.Close() }

func (s *Service) refresh(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.log.Warn("reload after action failed", logger.NewField("error", err))
	}
}
