package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/engine"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

const (
	// Глубина анализа истории при сборе статистики
	historyDepth = 20
	// Окно "последних" партий для сглаживания
	recentWindow = 7
	// Партии короче не учитываются в статистике (ремейки)
	minAnalyzedDuration = 600
	// Соло/дуо ранкед
	rankedQueueID = 420

	requestTimeout = 5 * time.Second
)

var (
	ErrAccountNotFound = errors.New("riot account not found")
	ErrNoRankedHistory = errors.New("no recent ranked history")
	ErrInvalidRiotID   = errors.New("invalid riot id, expected Name#TAG")
)

// Client - HTTP-клиент Riot API с лимитером запросов.
// Account и Match API живут на континентальном хосте,
// Summoner и Spectator - на региональном
type Client struct {
	httpClient    *http.Client
	limiter       *rate.Limiter
	apiKey        string
	continentHost string
	platformHost  string
}

func NewClient(cfg config.RiotConfig) *Client {
	return NewClientWithHosts(
		cfg.APIKey(),
		cfg.RequestsPerSecond(),
		fmt.Sprintf("https://%s.api.riotgames.com", cfg.Continent()),
		fmt.Sprintf("https://%s.api.riotgames.com", cfg.Platform()),
	)
}

func NewClientWithHosts(apiKey string, rps float64, continentHost, platformHost string) *Client {
	if rps <= 0 {
		rps = 1
	}

	return &Client{
		httpClient:    &http.Client{Timeout: requestTimeout},
		limiter:       rate.NewLimiter(rate.Limit(rps), 1),
		apiKey:        apiKey,
		continentHost: continentHost,
		platformHost:  platformHost,
	}
}

// ResolveAccount - PUUID по riot id вида Name#TAG
func (c *Client) ResolveAccount(ctx context.Context, riotID string) (string, error) {
	name, tag, ok := strings.Cut(riotID, "#")
	if !ok || name == "" || tag == "" {
		return "", ErrInvalidRiotID
	}

	var resp struct {
		PUUID string `json:"puuid"`
	}

	reqURL := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.continentHost, url.PathEscape(name), url.PathEscape(tag))

	if err := c.get(ctx, reqURL, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return "", ErrAccountNotFound
		}
		return "", err
	}

	return resp.PUUID, nil
}

// FetchPlayerStats - агрегированная статистика по последним партиям игрока
func (c *Client) FetchPlayerStats(ctx context.Context, puuid string) (*model.PlayerStats, error) {
	level, err := c.summonerLevel(ctx, puuid)
	if err != nil {
		return nil, err
	}

	ids, err := c.matchIDs(ctx, puuid, historyDepth)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoRankedHistory
	}

	stats := &model.PlayerStats{SummonerLevel: level}

	var (
		valid                              int
		wins, kills, deaths, assists       int
		mvpTeam, mvpMatch, topDmg, topFarm int
	)

	// ids приходят от новых к старым, recent-списки сохраняют этот порядок
	for _, id := range ids {
		match, err := c.MatchDetails(ctx, id)
		if err != nil {
			if errors.Is(err, errNotFound) {
				continue
			}
			return nil, err
		}
		if match.GameDuration <= minAnalyzedDuration {
			continue
		}

		var player *model.Participant
		for i := range match.Participants {
			if match.Participants[i].PUUID == puuid {
				player = &match.Participants[i]
				break
			}
		}
		if player == nil {
			continue
		}

		valid++
		kills += player.Kills
		deaths += player.Deaths
		assists += player.Assists
		if player.Win {
			wins++
		}
		stats.PlayerRoles = append(stats.PlayerRoles, player.TeamPosition)

		if len(stats.RecentWins) < recentWindow {
			stats.RecentWins = append(stats.RecentWins, player.Win)
			stats.RecentKills = append(stats.RecentKills, float64(player.Kills))
			stats.RecentAssists = append(stats.RecentAssists, float64(player.Assists))
			stats.RecentDeaths = append(stats.RecentDeaths, float64(player.Deaths))
		}

		leaders := engine.Leaders(*match)
		if leaders.TeamMVP[player.TeamID] == puuid {
			mvpTeam++
		}
		if leaders.MatchMVP == puuid {
			mvpMatch++
		}
		if leaders.TopDamage == puuid {
			topDmg++
		}
		if leaders.TopFarm == puuid {
			topFarm++
		}
	}

	if valid == 0 {
		return nil, ErrNoRankedHistory
	}

	n := float64(valid)
	stats.WinRate = float64(wins) / n
	stats.AvgKills = float64(kills) / n
	stats.AvgDeaths = float64(deaths) / n
	stats.AvgAssists = float64(assists) / n
	stats.MVPTeamFrequency = float64(mvpTeam) / n
	stats.MVPMatchFrequency = float64(mvpMatch) / n
	stats.TopDamageFrequency = float64(topDmg) / n
	stats.TopFarmFrequency = float64(topFarm) / n

	return stats, nil
}

// LastMatchID - ID последней ранкед-партии, пустая строка без истории
func (c *Client) LastMatchID(ctx context.Context, puuid string) (string, error) {
	ids, err := c.matchIDs(ctx, puuid, 1)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", nil
	}

	return ids[0], nil
}

// MatchDetails - телеметрия завершённой партии
func (c *Client) MatchDetails(ctx context.Context, matchID string) (*model.Match, error) {
	var resp struct {
		Metadata struct {
			MatchID string `json:"matchId"`
		} `json:"metadata"`
		Info struct {
			GameDuration int                 `json:"gameDuration"`
			Participants []model.Participant `json:"participants"`
		} `json:"info"`
	}

	reqURL := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.continentHost, url.PathEscape(matchID))
	if err := c.get(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	return &model.Match{
		MatchID:      resp.Metadata.MatchID,
		GameDuration: resp.Info.GameDuration,
		Participants: resp.Info.Participants,
	}, nil
}

// InActiveGame - находится ли игрок в партии прямо сейчас.
// 404 от Spectator V5 означает "не в игре"
func (c *Client) InActiveGame(ctx context.Context, puuid string) (bool, error) {
	var resp struct {
		GameMode string `json:"gameMode"`
	}

	reqURL := fmt.Sprintf("%s/lol/spectator/v5/active-games/by-summoner/%s",
		c.platformHost, url.PathEscape(puuid))

	err := c.get(ctx, reqURL, &resp)
	if errors.Is(err, errNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (c *Client) summonerLevel(ctx context.Context, puuid string) (int, error) {
	var resp struct {
		SummonerLevel int `json:"summonerLevel"`
	}

	reqURL := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s",
		c.platformHost, url.PathEscape(puuid))

	if err := c.get(ctx, reqURL, &resp); err != nil {
		return 0, err
	}

	return resp.SummonerLevel, nil
}

func (c *Client) matchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	var ids []string

	reqURL := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?queue=%d&start=0&count=%d",
		c.continentHost, url.PathEscape(puuid), rankedQueueID, count)

	if err := c.get(ctx, reqURL, &ids); err != nil {
		return nil, err
	}

	return ids, nil
}

var errNotFound = errors.New("riot api: not found")

func (c *Client) get(ctx context.Context, reqURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("riot api request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("riot api: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("riot api: decode response: %w", err)
	}

	return nil
}
