// internal/config/config.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"go-season-defense/internal/component"
	"go-season-defense/pkg/gridmap"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid — конфигурация не прошла проверку
var ErrInvalid = errors.New("invalid config")

// Config — все настраиваемые параметры игры.
type Config struct {
	Screen  ScreenConfig     `yaml:"screen"`
	Timing  TimingConfig     `yaml:"timing"`
	Map     MapConfig        `yaml:"map"`
	Base    BaseConfig       `yaml:"base"`
	Enemy   EnemyConfig      `yaml:"enemy"`
	Tower   TowerConfig      `yaml:"tower"`
	Bullet  BulletConfig     `yaml:"bullet"`
	Wave    WaveConfig       `yaml:"wave"`
	Area    AreaConfig       `yaml:"area"`
	Seasons []SeasonInterval `yaml:"seasons"`
	Score   ScoreConfig      `yaml:"score"`
}

// ScreenConfig — размеры окна. Карта подбирается под игровую область.
type ScreenConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SeasonBarHeight int `yaml:"season_bar_height"`
}

// TimingConfig — параметры времени
type TimingConfig struct {
	MaxDeltaTime  float64 `yaml:"max_delta_time"` // верхняя граница шага симуляции, сек
	SplashSeconds float64 `yaml:"splash_seconds"`
	Seed          int64   `yaml:"seed"` // 0 — сид от часов
}

// MapConfig — сетка и генерация стен
type MapConfig struct {
	CellSize     float64      `yaml:"cell_size"`
	WallStrokes  int          `yaml:"wall_strokes"`
	MaxStroke    int          `yaml:"max_stroke"`
	ClearRadius  int          `yaml:"clear_radius"`
	FallbackCell gridmap.Cell `yaml:"fallback_cell"` // куда идти из клетки без записи в поле потока
}

type BaseConfig struct {
	Health float64 `yaml:"health"`
	Radius float64 `yaml:"radius"`
}

type EnemyConfig struct {
	Health           float64 `yaml:"health"`
	Speed            float64 `yaml:"speed"`
	ContactDamage    float64 `yaml:"contact_damage"`
	Radius           float64 `yaml:"radius"`
	ArrivalThreshold float64 `yaml:"arrival_threshold"`
}

type TowerConfig struct {
	Level        int     `yaml:"level"`
	Health       float64 `yaml:"health"`
	Range        float64 `yaml:"range"`
	Damage       float64 `yaml:"damage"`
	FireInterval float64 `yaml:"fire_interval"`
	Radius       float64 `yaml:"radius"`
}

type BulletConfig struct {
	Speed           float64 `yaml:"speed"`
	Radius          float64 `yaml:"radius"`
	ContactDistance float64 `yaml:"contact_distance"`
}

// WaveConfig — периодичность и размер волн
type WaveConfig struct {
	Interval  float64 `yaml:"interval"`
	BatchSize int     `yaml:"batch_size"`
}

// AreaConfig — параметры кривой спада для действий по площади
type AreaConfig struct {
	PlacementDamage float64 `yaml:"placement_damage"`
	HealAmount      float64 `yaml:"heal_amount"`
	MinDistance     float64 `yaml:"min_distance"`
	FalloffK        float64 `yaml:"falloff_k"`
}

// SeasonInterval — один интервал расписания сезонов
type SeasonInterval struct {
	Kind     component.SeasonKind `yaml:"kind"`
	Duration float64              `yaml:"duration"`
}

type ScoreConfig struct {
	PerKill int `yaml:"per_kill"`
}

// Default возвращает встроенную конфигурацию.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load читает встроенные значения и накладывает поверх пользовательский файл, если path не пуст.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := cfg.Overlay(data); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay применяет YAML поверх текущих значений.
// Список сезонов, если он задан, заменяется целиком.
func (c *Config) Overlay(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate проверяет значения, без которых симуляция не имеет смысла.
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"screen.width", float64(c.Screen.Width)},
		{"screen.height", float64(c.Screen.Height)},
		{"timing.max_delta_time", c.Timing.MaxDeltaTime},
		{"map.cell_size", c.Map.CellSize},
		{"base.health", c.Base.Health},
		{"base.radius", c.Base.Radius},
		{"enemy.health", c.Enemy.Health},
		{"enemy.arrival_threshold", c.Enemy.ArrivalThreshold},
		{"tower.health", c.Tower.Health},
		{"tower.fire_interval", c.Tower.FireInterval},
		{"bullet.speed", c.Bullet.Speed},
		{"bullet.contact_distance", c.Bullet.ContactDistance},
		{"wave.interval", c.Wave.Interval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}

	if c.Wave.BatchSize < 0 {
		return fmt.Errorf("%w: wave.batch_size must not be negative", ErrInvalid)
	}
	if c.Screen.SeasonBarHeight < 0 || c.Screen.SeasonBarHeight >= c.Screen.Height {
		return fmt.Errorf("%w: screen.season_bar_height out of range", ErrInvalid)
	}
	if len(c.Seasons) == 0 {
		return fmt.Errorf("%w: seasons must not be empty", ErrInvalid)
	}
	for i, s := range c.Seasons {
		if s.Duration < 0 {
			return fmt.Errorf("%w: seasons[%d].duration must not be negative", ErrInvalid, i)
		}
	}
	return nil
}

// PlayfieldHeight — высота игровой области без полосы сезонов
func (c *Config) PlayfieldHeight() float64 {
	return float64(c.Screen.Height - c.Screen.SeasonBarHeight)
}

// GenerateOptions переводит настройки карты в параметры генератора
func (c *Config) GenerateOptions() gridmap.GenerateOptions {
	return gridmap.GenerateOptions{
		Strokes:     c.Map.WallStrokes,
		MaxStroke:   c.Map.MaxStroke,
		ClearRadius: c.Map.ClearRadius,
	}
}

// TotalSeasonDuration — суммарная длительность всех сезонов
func (c *Config) TotalSeasonDuration() float64 {
	var total float64
	for _, s := range c.Seasons {
		total += s.Duration
	}
	return total
}
