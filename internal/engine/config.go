package engine

// Режимы расчёта маржи. Static - базовая маржа плюс редуктор безопасности,
// Dynamic - маржа растёт от P/L игрока и платформы, без редуктора
const (
	MarginModeStatic  = "static"
	MarginModeDynamic = "dynamic"
)

// Config - настройки движка котировок. Передаётся явно в каждый вызов,
// изменение конфига применяется со следующего расчёта
type Config struct {
	Margins         MarginConfig     `yaml:"margins" json:"margins"`
	Difficulty      DifficultyConfig `yaml:"difficulty" json:"difficulty"`
	SafetyReduction float64          `yaml:"safety_reduction" json:"safety_reduction"`
	PriceStep       float64          `yaml:"price_step" json:"price_step"`
	Risk            RiskConfig       `yaml:"risk" json:"risk"`
}

type MarginConfig struct {
	Mode  string  `yaml:"mode" json:"mode"`
	Main  float64 `yaml:"main" json:"main"`
	Stats float64 `yaml:"stats" json:"stats"`
	// Потолок маржи в динамическом режиме
	Max float64 `yaml:"max" json:"max"`

	// Параметры динамического режима
	BetCountThreshold int     `yaml:"bet_count_threshold" json:"bet_count_threshold"`
	PlayerStep        float64 `yaml:"player_step" json:"player_step"`
	PlatformStep      float64 `yaml:"platform_step" json:"platform_step"`
}

type DifficultyConfig struct {
	Min         float64 `yaml:"min" json:"min"`
	Max         float64 `yaml:"max" json:"max"`
	WinrateBand Band    `yaml:"winrate_band" json:"winrate_band"`
}

// Band - коммерческий коридор винрейта
type Band struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

type RiskConfig struct {
	MinAccountLevel   int     `yaml:"min_account_level" json:"min_account_level"`
	MaxAllowedWinrate float64 `yaml:"max_allowed_winrate" json:"max_allowed_winrate"`
}

// DefaultConfig - значения по умолчанию, если админ ничего не настраивал
func DefaultConfig() Config {
	return Config{
		Margins: MarginConfig{
			Mode:              MarginModeStatic,
			Main:              0.15,
			Stats:             0.30,
			Max:               0.50,
			BetCountThreshold: 5,
			PlayerStep:        0.05,
			PlatformStep:      0.05,
		},
		Difficulty: DifficultyConfig{
			Min:         0.25,
			Max:         0.65,
			WinrateBand: Band{Min: 0.20, Max: 0.70},
		},
		SafetyReduction: 0.10,
		PriceStep:       0.05,
		Risk: RiskConfig{
			MinAccountLevel:   100,
			MaxAllowedWinrate: 0.85,
		},
	}
}
