package model

import "time"

// Статусы ставки. Переходы только pending -> won|lost|void
const (
	BetPending = "pending"
	BetWon     = "won"
	BetLost    = "lost"
	BetVoid    = "void"
)

// Challenge - одно предложение (нога ставки) из сгенерированного меню.
// Неизменяемо после создания
type Challenge struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Odd         float64 `json:"odd"`
	ConflictKey string  `json:"conflictKey"`
	TargetStat  string  `json:"targetStat"`
	TargetValue float64 `json:"targetValue"`
	GameType    string  `json:"gameType"`
}

// StakeSplit - разбивка ставки между реальным и бонусным балансом.
// Сохраняется при приёме ставки, чтобы выплата шла пропорционально
type StakeSplit struct {
	Real  float64 `json:"real"`
	Bonus float64 `json:"bonus"`
}

type Bet struct {
	ID                string
	UserID            int
	PUUID             string
	GameType          string
	Amount            float64
	TotalOdd          float64
	PotentialWinnings float64
	Items             []Challenge
	Split             StakeSplit
	Status            string
	// Последняя партия на момент приёма ставки. Расчёт ждёт партию новее этой
	LastMatchID string
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// Verdict - результат расчёта ставки
type Verdict struct {
	Status string
	Reason string
}
