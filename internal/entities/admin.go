package entities

type Admin struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	Admin       *Admin `json:"admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ActionResult ответ backend на команды без тела сущности.
type ActionResult struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}
