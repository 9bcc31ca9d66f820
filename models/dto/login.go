package dto

type Login struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	CaptchaID   string `json:"captchaId"`
	CaptchaCode string `json:"captchaCode"`
}

type Register struct {
	Username    string `json:"username" validate:"required,min=3,max=64"`
	Nickname    string `json:"nickname"`
	Password    string `json:"password" validate:"required,min=6"`
	Email       string `json:"email" validate:"omitempty,email"`
	CaptchaID   string `json:"captchaId"`
	CaptchaCode string `json:"captchaCode"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
}

// CurrentUserInfo is the profile payload behind /users/me
type CurrentUserInfo struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}
