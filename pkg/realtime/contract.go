package realtime

// TokenSource отдаёт текущий bearer-токен или пустую строку.
type TokenSource interface {
	Token() string
}
