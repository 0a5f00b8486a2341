package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/logger"
)

// State снимок сессии, передаётся подписчикам OnChange.
type State struct {
	Token         string          `json:"-"`
	Admin         *entities.Admin `json:"admin,omitempty"`
	Authenticated bool            `json:"authenticated"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
}

type Listener func(State)

// Service единственный владелец токена администратора. REST-клиент
// и realtime-каналы читают токен через Token().
type Service struct {
	log   logger.Logger
	auth  Authenticator
	store TokenStore
	now   func() time.Time

	mu    sync.RWMutex
	state State
	gen   uint64

	// changeMu упорядочивает смену состояния и уведомления
	changeMu sync.Mutex

	lmu       sync.Mutex
	listeners map[uint64]Listener
	nextID    uint64
}

func New(log logger.Logger, auth Authenticator, store TokenStore) *Service {
	return NewWithClock(log, auth, store, time.Now)
}

func NewWithClock(log logger.Logger, auth Authenticator, store TokenStore, now func() time.Time) *Service {
	return &Service{
		log:       log.With(logger.NewField("component", "session")),
		auth:      auth,
		store:     store,
		now:       now,
		listeners: make(map[uint64]Listener),
	}
}

// Token возвращает текущий токен или пустую строку, если сессии нет
// или срок токена истёк.
func (s *Service) Token() string {
	return s.current().Token
}

func (s *Service) State() State {
	return s.current()
}

func (s *Service) Admin() *entities.Admin {
	return s.State().Admin
}

func (s *Service) IsAuthenticated() bool {
	return s.State().Authenticated
}

// Restore поднимает сохранённый токен. Истёкший JWT удаляется из хранилища.
func (s *Service) Restore(ctx context.Context) error {
	token, err := s.store.Load(ctx)
	if errors.Is(err, ErrTokenNotFound) {
		s.log.Info("no stored admin token")
		s.set(State{})
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	next := s.stateFromToken(token, nil)
	if s.expired(next) {
		s.log.Warn("stored admin token expired, clearing",
			logger.NewField("expired_at", next.ExpiresAt),
		)
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear expired token: %w", err)
		}
		s.set(State{})
		return nil
	}

	s.set(next)
	s.log.Info("admin session restored")
	return nil
}

func (s *Service) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	res, err := s.auth.AdminLogin(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := s.store.Save(ctx, res.AccessToken); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	s.set(s.stateFromToken(res.AccessToken, res.Admin))
	s.log.Info("admin logged in", logger.NewField("email", email))
	return nil
}

// Logout всегда сбрасывает сессию в памяти, даже если хранилище недоступно.
func (s *Service) Logout(ctx context.Context) error {
	clearErr := s.store.Clear(ctx)
	s.set(State{})
	s.log.Info("admin logged out")

	if clearErr != nil {
		return fmt.Errorf("clear stored token: %w", clearErr)
	}
	return nil
}

// OnChange подписывает listener на смену сессии. Возвращает функцию отписки.
func (s *Service) OnChange(listener Listener) func() {
	s.lmu.Lock()
	defer s.lmu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Service) current() State {
	s.mu.RLock()
	st := s.state
	s.mu.RUnlock()

	if !s.expired(st) {
		return st
	}
	s.expire(st)
	return State{}
}

// expire закрывает сессию, срок которой истёк, один раз на токен.
// Подписчики останавливают тех, кто читает Token(), поэтому уведомление асинхронное.
func (s *Service) expire(st State) {
	s.mu.Lock()
	if s.state.Token != st.Token || !s.state.Authenticated {
		s.mu.Unlock()
		return
	}
	s.state = State{}
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	s.log.Warn("admin token expired, closing session",
		logger.NewField("expired_at", st.ExpiresAt),
	)

	go func() {
		s.changeMu.Lock()
		defer s.changeMu.Unlock()

		s.mu.RLock()
		stale := s.gen != gen
		s.mu.RUnlock()
		if stale {
			return
		}
		s.notify(State{})
	}()
}

func (s *Service) set(next State) {
	s.changeMu.Lock()
	defer s.changeMu.Unlock()

	s.mu.Lock()
	s.state = next
	s.gen++
	s.mu.Unlock()

	s.notify(next)
}

func (s *Service) notify(st State) {
	s.lmu.Lock()
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.lmu.Unlock()

	for _, l := range listeners {
		l(st)
	}
}

func (s *Service) stateFromToken(token string, admin *entities.Admin) State {
	st := State{Token: token, Admin: admin, Authenticated: token != ""}
	if claims, ok := parseClaims(token); ok {
		st.ExpiresAt = claims.ExpiresAt
		if st.Admin == nil {
			st.Admin = claims.Admin
		}
	}
	return st
}

func (s *Service) expired(st State) bool {
	return st.ExpiresAt != nil && !s.now().Before(*st.ExpiresAt)
}
