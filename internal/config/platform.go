package config

import "github.com/gkratosBR/Glitch-Arena/internal/engine"

// Platform - полный операторский конфиг платформы: настройки движка
// котировок плюс системные, платёжные и лимитные параметры.
// Хранится документом в БД и правится из админки; значения ниже -
// дефолты на случай пустого документа
type Platform struct {
	Engine   engine.Config  `yaml:"engine" json:"engine"`
	System   SystemConfig   `yaml:"system" json:"system"`
	Limits   LimitsConfig   `yaml:"limits" json:"limits"`
	Payment  PaymentConfig  `yaml:"payment" json:"payment"`
	Referral ReferralConfig `yaml:"referral" json:"referral"`
}

type SystemConfig struct {
	// TTL кеша статистики игрока
	StatsTTLMinutes int `yaml:"stats_ttl_minutes" json:"stats_ttl_minutes"`
	// Период фонового расчёта ставок
	ResolutionIntervalMinutes int `yaml:"resolution_interval_minutes" json:"resolution_interval_minutes"`
	// Партии короче не рассчитываются (ремейк)
	MinMatchDurationSec int `yaml:"min_match_duration_sec" json:"min_match_duration_sec"`
}

type LimitsConfig struct {
	MaxGlobalBetLimit float64 `yaml:"max_global_bet_limit" json:"max_global_bet_limit"`
}

type PaymentConfig struct {
	MinDeposit    float64 `yaml:"min_deposit" json:"min_deposit"`
	MinWithdrawal float64 `yaml:"min_withdrawal" json:"min_withdrawal"`
}

type ReferralConfig struct {
	ReferrerAmount     float64 `yaml:"referrer_amount" json:"referrer_amount"`
	RolloverMultiplier float64 `yaml:"rollover_multiplier" json:"rollover_multiplier"`
}

func DefaultPlatform() Platform {
	return Platform{
		Engine: engine.DefaultConfig(),
		System: SystemConfig{
			StatsTTLMinutes:           45,
			ResolutionIntervalMinutes: 10,
			MinMatchDurationSec:       900,
		},
		Limits: LimitsConfig{
			MaxGlobalBetLimit: 200.0,
		},
		Payment: PaymentConfig{
			MinDeposit:    20.0,
			MinWithdrawal: 50.0,
		},
		Referral: ReferralConfig{
			ReferrerAmount:     5.00,
			RolloverMultiplier: 20.0,
		},
	}
}
