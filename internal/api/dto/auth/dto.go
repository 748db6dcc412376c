package auth

type RegisterRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`    // Логин (email)
	Password string `json:"password"` // Пароль в открытом виде, хэшируется сервисом
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
