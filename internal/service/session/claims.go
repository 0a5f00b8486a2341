package session

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"khaogully-admin/internal/entities"
)

type tokenClaims struct {
	ExpiresAt *time.Time
	Admin     *entities.Admin
}

// parseClaims читает claims без проверки подписи: консоль не владеет ключом,
// подпись проверяет backend. Непрозрачные токены возвращают ok=false.
func parseClaims(token string) (tokenClaims, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tokenClaims{}, false
	}

	var out tokenClaims
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		out.ExpiresAt = &t
	}

	email, _ := claims["email"].(string)
	sub, _ := claims.GetSubject()
	if email == "" && sub == "" {
		return out, true
	}

	admin := &entities.Admin{Email: email}
	if id, err := strconv.ParseInt(sub, 10, 64); err == nil {
		admin.ID = id
	} else if admin.Email == "" {
		admin.Email = sub
	}
	if name, ok := claims["full_name"].(string); ok {
		admin.FullName = name
	}
	out.Admin = admin
	return out, true
}
