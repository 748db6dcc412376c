package env

import (
	"fmt"
	"os"

	"github.com/gkratosBR/Glitch-Arena/internal/config"

	"gopkg.in/yaml.v3"
)

// NewPlatformConfigFromYAML - дефолтный операторский конфиг из config.yaml.
// Файл перекрывает значения по умолчанию; дальше конфиг живёт
// документом в БД и правится из админки
func NewPlatformConfigFromYAML(path string) (config.Platform, error) {
	cfg := config.DefaultPlatform()

	data, err := os.ReadFile(path)
	if err != nil {
		return config.Platform{}, fmt.Errorf("failed to read platform config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config.Platform{}, fmt.Errorf("failed to parse platform config: %w", err)
	}

	return cfg, nil
}
