package env

import (
	"errors"
	"os"
	"strconv"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
)

const (
	riotAPIKeyEnvName    = "RIOT_API_KEY"
	riotContinentEnvName = "RIOT_CONTINENT"
	riotPlatformEnvName  = "RIOT_PLATFORM"
	riotRPSEnvName       = "RIOT_REQUESTS_PER_SECOND"

	defaultContinent = "americas"
	defaultPlatform  = "br1"
	// Лимит девелоперского ключа Riot - 20 запросов в секунду
	defaultRPS = 15.0
)

type riotConfig struct {
	apiKey    string
	continent string
	platform  string
	rps       float64
}

func NewRiotConfig() (config.RiotConfig, error) {
	apiKey := os.Getenv(riotAPIKeyEnvName)
	if len(apiKey) == 0 {
		return nil, errors.New("riot api key not found")
	}

	continent := os.Getenv(riotContinentEnvName)
	if len(continent) == 0 {
		continent = defaultContinent
	}

	platform := os.Getenv(riotPlatformEnvName)
	if len(platform) == 0 {
		platform = defaultPlatform
	}

	rps := defaultRPS
	if raw := os.Getenv(riotRPSEnvName); len(raw) > 0 {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return nil, errors.New("invalid riot requests per second")
		}
		rps = parsed
	}

	return &riotConfig{
		apiKey:    apiKey,
		continent: continent,
		platform:  platform,
		rps:       rps,
	}, nil
}

func (cfg *riotConfig) APIKey() string {
	return cfg.apiKey
}

func (cfg *riotConfig) Continent() string {
	return cfg.continent
}

func (cfg *riotConfig) Platform() string {
	return cfg.platform
}

func (cfg *riotConfig) RequestsPerSecond() float64 {
	return cfg.rps
}
