package pages

import (
	"khaogully-admin/pkg/background"
)

// Page страница консоли: задачи опроса, необязательный realtime-канал
// и хуки открытия и закрытия представления.
type Page struct {
	Name    string
	Tasks   []background.Task
	Channel func() Channel

	// Open вызывается до прогрева, Close после остановки задач и канала.
	Open  func()
	Close func()
}

type PageStatus struct {
	Name    string         `json:"name"`
	Mounted bool           `json:"mounted"`
	Channel *ChannelStatus `json:"channel,omitempty"`
}

type ChannelStatus struct {
	Name  string `json:"name"`
	State string `json:"state"`
}
