package model

// PlayerStats - агрегированная статистика привязанного аккаунта.
// Собирается клиентом телеметрии по последним 20 партиям
type PlayerStats struct {
	SummonerLevel int     `json:"summonerLevel"`
	WinRate       float64 `json:"winRate"`
	AvgKills      float64 `json:"avgKills"`
	AvgAssists    float64 `json:"avgAssists"`
	AvgDeaths     float64 `json:"avgDeaths"`

	// Последние партии (не более 7), от новых к старым
	RecentWins    []bool    `json:"recentWins"`
	RecentKills   []float64 `json:"recentKills"`
	RecentAssists []float64 `json:"recentAssists"`
	RecentDeaths  []float64 `json:"recentDeaths"`

	PlayerRoles []string `json:"playerRoles"`

	// Частоты дискретных событий по истории
	MVPTeamFrequency   float64 `json:"mvpTeamFreq"`
	MVPMatchFrequency  float64 `json:"mvpMatchFreq"`
	TopDamageFrequency float64 `json:"topDamageFreq"`
	TopFarmFrequency   float64 `json:"topFarmFreq"`
}

// Participant - статистика одного участника завершённой партии
type Participant struct {
	PUUID        string `json:"puuid"`
	TeamID       int    `json:"teamId"`
	TeamPosition string `json:"teamPosition"`
	Win          bool   `json:"win"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`

	DamageToChampions  int `json:"totalDamageDealtToChampions"`
	TotalMinionsKilled int `json:"totalMinionsKilled"`
	NeutralMinions     int `json:"neutralMinionsKilled"`
	VisionScore        int `json:"visionScore"`
}

// Farm - крипы с линии плюс лесные
func (p Participant) Farm() int {
	return p.TotalMinionsKilled + p.NeutralMinions
}

// Match - телеметрия одной завершённой партии
type Match struct {
	MatchID      string        `json:"matchId"`
	GameDuration int           `json:"gameDuration"` // секунды
	Participants []Participant `json:"participants"`
}
