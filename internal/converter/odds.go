package converter

import (
	"github.com/gkratosBR/Glitch-Arena/internal/api/dto/odds"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

func ToConnectResponse(acct model.LinkedAccount) odds.ConnectResponse {
	return odds.ConnectResponse{
		PlayerID: acct.PlayerID,
		PUUID:    acct.PUUID,
		GameType: acct.GameType,
	}
}
