// Package pages монтирует страницы консоли на время сессии администратора.
package pages

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"khaogully-admin/internal/service/session"
	"khaogully-admin/pkg/background"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/realtime"
)

type mountedPage struct {
	page    Page
	worker  *background.Worker
	channel Channel
}

type Manager struct {
	log   logger.Logger
	pages []Page

	mu      sync.Mutex
	cancel  context.CancelFunc
	mounted []*mountedPage
}

func NewManager(log logger.Logger, pages []Page) *Manager {
	return &Manager{
		log:   log.With(logger.NewField("component", "pages")),
		pages: pages,
	}
}

func (m *Manager) Mounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted != nil
}

// Mount открывает все страницы: прогрев задач идёт параллельно по страницам,
// затем запускаются каналы. Повторный вызов ничего не делает.
//
// Ошибка одной страницы не мешает остальным, ошибки объединяются.
func (m *Manager) Mount(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mounted != nil {
		return nil
	}

	pageCtx, cancel := context.WithCancel(ctx)
	mounted := make([]*mountedPage, len(m.pages))
	errs := make([]error, len(m.pages))

	var g errgroup.Group
	for i, p := range m.pages {
		g.Go(func() error {
			mounted[i], errs[i] = m.mountPage(pageCtx, p)
			return nil
		})
	}
	_ = g.Wait()

	m.cancel = cancel
	m.mounted = make([]*mountedPage, 0, len(mounted))
	for _, mp := range mounted {
		if mp != nil {
			m.mounted = append(m.mounted, mp)
		}
	}
	pagesMounted.Set(float64(len(m.mounted)))

	err := multierr.Combine(errs...)
	if err != nil {
		m.log.Warn("some pages failed to mount", logger.NewField("error", err))
	} else {
		m.log.Info("pages mounted", logger.NewField("pages", len(m.mounted)))
	}
	return err
}

func (m *Manager) mountPage(ctx context.Context, p Page) (*mountedPage, error) {
	log := m.log.With(logger.NewField("page", p.Name))

	if p.Open != nil {
		p.Open()
	}

	worker, err := background.New(ctx, log, p.Tasks)
	if err != nil {
		if p.Close != nil {
			p.Close()
		}
		return nil, fmt.Errorf("mount %s: %w", p.Name, err)
	}

	mp := &mountedPage{page: p, worker: worker}
	if p.Channel == nil {
		return mp, nil
	}

	ch := p.Channel()
	if err := ch.Start(ctx); err != nil {
		if errors.Is(err, realtime.ErrNoToken) {
			log.Warn("realtime channel not started: no session token")
			return mp, nil
		}
		return mp, fmt.Errorf("start %s channel: %w", p.Name, err)
	}
	mp.channel = ch
	return mp, nil
}

// Unmount закрывает каналы, останавливает задачи и закрывает представления
// в обратном порядке монтирования.
func (m *Manager) Unmount() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mounted == nil {
		return nil
	}

	m.cancel()

	var err error
	for i := len(m.mounted) - 1; i >= 0; i-- {
		mp := m.mounted[i]
		if mp.channel != nil {
			if cerr := mp.channel.Close(); cerr != nil {
				err = multierr.Append(err, fmt.Errorf("close %s channel: %w", mp.page.Name, cerr))
			}
		}
		mp.worker.Stop()
		if mp.page.Close != nil {
			mp.page.Close()
		}
	}

	m.mounted = nil
	m.cancel = nil
	pagesMounted.Set(0)
	m.log.Info("pages unmounted")
	return err
}

// HandleSessionChange возвращает подписчика session.OnChange: вход монтирует
// страницы, выход размонтирует. ctx живёт дольше запроса, вызвавшего вход.
func (m *Manager) HandleSessionChange(ctx context.Context) session.Listener {
	return func(st session.State) {
		if st.Authenticated {
			if err := m.Mount(ctx); err != nil {
				m.log.Error("mount on login", logger.NewField("error", err))
			}
			return
		}
		if err := m.Unmount(); err != nil {
			m.log.Error("unmount on logout", logger.NewField("error", err))
		}
	}
}

func (m *Manager) Status() []PageStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	byName := make(map[string]*mountedPage, len(m.mounted))
	for _, mp := range m.mounted {
		byName[mp.page.Name] = mp
	}

	res := make([]PageStatus, 0, len(m.pages))
	for _, p := range m.pages {
		st := PageStatus{Name: p.Name}
		if mp, ok := byName[p.Name]; ok {
			st.Mounted = true
			if mp.channel != nil {
				st.Channel = &ChannelStatus{Name: mp.channel.Name(), State: string(mp.channel.State())}
			}
		}
		res = append(res, st)
	}
	return res
}
