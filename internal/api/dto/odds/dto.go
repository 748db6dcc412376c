package odds

type ConnectRequest struct {
	RiotID   string `json:"riotId"`   // Формат Name#TAG
	GameType string `json:"gameType"` // Пока только "lol"
}

type ConnectResponse struct {
	PlayerID string `json:"playerId"`
	PUUID    string `json:"puuid"`
	GameType string `json:"gameType"`
}

type CustomRequest struct {
	GameType string  `json:"gameType"`
	Target   float64 `json:"target"` // Целое число убийств
}
