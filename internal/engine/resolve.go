package engine

import (
	"fmt"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

// DefaultMinMatchDuration - партии короче считаются ремейком и не рассчитываются
const DefaultMinMatchDuration = 900

// PerformanceScore - сводная оценка участника за партию:
// 10×KDA + 2×(фарм в минуту) + 0.5×обзор + урон/1000
func PerformanceScore(p model.Participant, durationMinutes float64) float64 {
	if durationMinutes <= 0 {
		durationMinutes = 25
	}

	deaths := p.Deaths
	if deaths <= 0 {
		deaths = 1
	}
	kda := float64(p.Kills+p.Assists) / float64(deaths)

	return 10*kda +
		2*(float64(p.Farm())/durationMinutes) +
		0.5*float64(p.VisionScore) +
		float64(p.DamageToChampions)/1000
}

// MatchLeaders - вычисленные по всем участникам достижения партии.
// При равенстве очков побеждает участник, встреченный первым
type MatchLeaders struct {
	TeamMVP   map[int]string
	MatchMVP  string
	TopDamage string
	TopFarm   string
}

// Leaders - MVP команд, MVP партии и лидеры по урону и фарму
func Leaders(match model.Match) MatchLeaders {
	minutes := float64(match.GameDuration) / 60

	agg := MatchLeaders{TeamMVP: make(map[int]string)}
	teamBest := make(map[int]float64)
	matchBest, damageBest, farmBest := -1.0, -1, -1

	for _, p := range match.Participants {
		score := PerformanceScore(p, minutes)

		if best, ok := teamBest[p.TeamID]; !ok || score > best {
			teamBest[p.TeamID] = score
			agg.TeamMVP[p.TeamID] = p.PUUID
		}
		if score > matchBest {
			matchBest = score
			agg.MatchMVP = p.PUUID
		}
		if p.DamageToChampions > damageBest {
			damageBest = p.DamageToChampions
			agg.TopDamage = p.PUUID
		}
		if p.Farm() > farmBest {
			farmBest = p.Farm()
			agg.TopFarm = p.PUUID
		}
	}

	return agg
}

// ResolveBet - вердикт по ставке на основе телеметрии завершённой партии.
// Короткая партия или отсутствие игрока в ней - void; дальше все ноги
// проверяются конъюнктивно: одна проваленная нога - вся ставка lost
func ResolveBet(match model.Match, puuid string, items []model.Challenge, minDuration int) model.Verdict {
	if minDuration <= 0 {
		minDuration = DefaultMinMatchDuration
	}
	if match.GameDuration < minDuration {
		return model.Verdict{Status: model.BetVoid, Reason: "short match (remake)"}
	}

	var player *model.Participant
	for i := range match.Participants {
		if match.Participants[i].PUUID == puuid {
			player = &match.Participants[i]
			break
		}
	}
	if player == nil {
		return model.Verdict{Status: model.BetVoid, Reason: "player not present in match"}
	}

	agg := Leaders(match)

	for _, item := range items {
		ok, err := evaluateLeg(*player, puuid, item, agg)
		if err != nil {
			// Неизвестная нога - дефект данных, риск несёт дом
			return model.Verdict{Status: model.BetVoid, Reason: err.Error()}
		}
		if !ok {
			return model.Verdict{Status: model.BetLost, Reason: fmt.Sprintf("leg %s not satisfied", item.ID)}
		}
	}

	return model.Verdict{Status: model.BetWon, Reason: "all legs satisfied"}
}

func evaluateLeg(p model.Participant, puuid string, item model.Challenge, agg MatchLeaders) (bool, error) {
	switch item.TargetStat {
	case "win":
		return p.Win == (item.TargetValue != 0), nil
	case "kills":
		return p.Kills >= int(item.TargetValue), nil
	case "assists":
		return p.Assists >= int(item.TargetValue), nil
	case "deaths":
		// Порог читается как "меньше target+0.5"
		return p.Deaths < int(item.TargetValue)+1, nil
	case "mvp_team":
		return agg.TeamMVP[p.TeamID] == puuid, nil
	case "mvp_match":
		return agg.MatchMVP == puuid, nil
	case "top_damage":
		return agg.TopDamage == puuid, nil
	case "top_farm":
		return agg.TopFarm == puuid, nil
	default:
		return false, fmt.Errorf("unknown target stat %q", item.TargetStat)
	}
}
