package realtime

import "errors"

var (
	ErrNoToken        = errors.New("realtime: no session token")
	ErrNotConnected   = errors.New("realtime: not connected")
	ErrAlreadyStarted = errors.New("realtime: channel already started")
	ErrRejected       = errors.New("realtime: handshake rejected")
)

var (
	ErrClosed = errors.New("realtime: channel closed")

	errBadURL = errors.New("realtime: invalid url")
)
