package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/wizinfantry/LLM-Text-RPG/internal/engine"
)

// Config is the full file-backed configuration: the LLM endpoint and the
// game constants.
type Config struct {
	LLM  LLMConfig  `yaml:"llm"`
	Game GameConfig `yaml:"game"`
}

// LLMConfig points at the local generation server.
type LLMConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (l LLMConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// GameConfig mirrors engine.Config in yaml form.
type GameConfig struct {
	BaseHitChance      float64 `yaml:"base_hit_chance"`
	BaseEvasionRate    float64 `yaml:"base_evasion_rate"`
	BaseCriticalChance float64 `yaml:"base_critical_chance"`
	CriticalMultiplier float64 `yaml:"critical_multiplier"`
	BaseHP             int     `yaml:"base_hp"`
	HPPerLevel         int     `yaml:"hp_per_level"`
	BaseMP             int     `yaml:"base_mp"`
	MPPerLevel         int     `yaml:"mp_per_level"`
	StartingGold       int     `yaml:"starting_gold"`
	BaseExp            int     `yaml:"base_exp"`
	ExpMultiplier      float64 `yaml:"exp_multiplier"`
}

// Default returns the standard configuration.
func Default() Config {
	e := engine.DefaultConfig()
	return Config{
		LLM: LLMConfig{
			BaseURL:        "http://localhost:11434",
			Model:          "llama3.1",
			TimeoutSeconds: 60,
		},
		Game: GameConfig{
			BaseHitChance:      e.BaseHitChance,
			BaseEvasionRate:    e.BaseEvasionRate,
			BaseCriticalChance: e.BaseCriticalChance,
			CriticalMultiplier: e.CriticalMultiplier,
			BaseHP:             e.BaseHP,
			HPPerLevel:         e.HPPerLevel,
			BaseMP:             e.BaseMP,
			MPPerLevel:         e.MPPerLevel,
			StartingGold:       e.StartingGold,
			BaseExp:            e.Curve.BaseExp,
			ExpMultiplier:      e.Curve.Multiplier,
		},
	}
}

// EngineConfig converts the yaml form into the immutable value the engine
// consumes.
func (c Config) EngineConfig() engine.Config {
	return engine.Config{
		BaseHitChance:      c.Game.BaseHitChance,
		BaseEvasionRate:    c.Game.BaseEvasionRate,
		BaseCriticalChance: c.Game.BaseCriticalChance,
		CriticalMultiplier: c.Game.CriticalMultiplier,
		BaseHP:             c.Game.BaseHP,
		HPPerLevel:         c.Game.HPPerLevel,
		BaseMP:             c.Game.BaseMP,
		MPPerLevel:         c.Game.MPPerLevel,
		StartingGold:       c.Game.StartingGold,
		Curve: engine.Curve{
			BaseExp:    c.Game.BaseExp,
			Multiplier: c.Game.ExpMultiplier,
		},
	}
}

// DefaultPath returns the config file location, ~/.llm-text-rpg.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".llm-text-rpg.yaml"), nil
}

// Load reads defaults, overlays the config file when present, then applies
// env overrides. A .env file in the working directory is honored.
func Load() (Config, error) {
	// Missing .env is fine.
	_ = godotenv.Load()

	cfg := Default()

	path := os.Getenv("LLMRPG_CONFIG")
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	if err := loadFile(&cfg, path); err != nil {
		return cfg, err
	}

	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLMRPG_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate rejects game constants the engine cannot run on.
func (c Config) validate() error {
	if c.Game.BaseExp < 1 {
		return fmt.Errorf("config: game.base_exp must be positive, got %d", c.Game.BaseExp)
	}
	if c.Game.ExpMultiplier <= 0 {
		return fmt.Errorf("config: game.exp_multiplier must be positive, got %g", c.Game.ExpMultiplier)
	}
	if c.Game.BaseHP < 1 {
		return fmt.Errorf("config: game.base_hp must be positive, got %d", c.Game.BaseHP)
	}
	if c.Game.BaseMP < 1 {
		return fmt.Errorf("config: game.base_mp must be positive, got %d", c.Game.BaseMP)
	}
	return nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
