package dto

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"` // DD.MM.YYYY
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserProfileResponse struct {
	Username  string `json:"username"`
	BirthDate string `json:"birthDate"`
	Age       int    `json:"age"`
}
