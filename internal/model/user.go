package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Name     string
	Login    string
	Password string

	// Кошелёк в Glitchcoins
	Wallet         float64
	BonusWallet    float64
	RolloverTarget float64

	// Накопительные показатели для лимитов и динамической маржи
	TotalWagered   float64
	TotalDeposited float64
	ProfitLoss     float64
	TotalBetsMade  int

	CurrentBetLimit float64
	KYCStatus       string
	ReferralCode    string
	IsAdmin         bool

	LastBetPlacedAt *time.Time
}

// LinkedAccount - привязанный игровой аккаунт пользователя
type LinkedAccount struct {
	UserID   int
	GameType string
	PlayerID string
	PUUID    string
}

type UserClaims struct {
	jwt.RegisteredClaims

	// Admin - признак администратора, прошитый в access-токен
	Admin bool `json:"admin,omitempty"`
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

// Статусы KYC
const (
	KYCPending  = "pending"
	KYCVerified = "verified"
)
