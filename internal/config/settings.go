// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Имена переменных окружения, которые читает LoadSettings.
const (
	EnvSpawnMin   = "SHOOTER_SPAWN_MIN"
	EnvSpawnMax   = "SHOOTER_SPAWN_MAX"
	EnvBurstCount = "SHOOTER_BURST_COUNT"
	EnvSeed       = "SHOOTER_SEED"
	EnvPprofAddr  = "SHOOTER_PPROF_ADDR"
)

// Settings — параметры, которые можно менять без пересборки.
type Settings struct {
	// SpawnIntervalMin/Max — границы интервала появления врагов в секундах.
	// Равные значения дают фиксированный интервал.
	SpawnIntervalMin float64
	SpawnIntervalMax float64
	// BurstCount — число частиц при попадании; 0 означает round(radius*BurstPerRadius).
	BurstCount int
	// Seed для PRNG; 0 — текущее время.
	Seed int64
	// PprofAddr — адрес для net/http/pprof, пустая строка отключает.
	PprofAddr string
}

// DefaultSettings возвращает настройки «богатой» версии игры.
func DefaultSettings() Settings {
	return Settings{
		SpawnIntervalMin: SpawnIntervalMin,
		SpawnIntervalMax: SpawnIntervalMax,
		BurstCount:       0,
	}
}

// SimpleSettings — настройки простой версии: враг раз в секунду, по 8 частиц.
func SimpleSettings() Settings {
	return Settings{
		SpawnIntervalMin: 1,
		SpawnIntervalMax: 1,
		BurstCount:       FixedBurstCount,
	}
}

// Validate проверяет согласованность настроек.
func (s Settings) Validate() error {
	if s.SpawnIntervalMin <= 0 {
		return fmt.Errorf("spawn interval min must be positive, got %v", s.SpawnIntervalMin)
	}
	if s.SpawnIntervalMax < s.SpawnIntervalMin {
		return fmt.Errorf("spawn interval max %v is less than min %v", s.SpawnIntervalMax, s.SpawnIntervalMin)
	}
	if s.BurstCount < 0 {
		return fmt.Errorf("burst count must not be negative, got %d", s.BurstCount)
	}
	return nil
}

// LoadSettings накладывает на base значения из .env файлов и окружения.
// Отсутствие файла не ошибка: переменные окружения всё равно читаются.
func LoadSettings(base Settings, files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return base, fmt.Errorf("failed to load env file: %w", err)
	}
	return applyEnv(base, os.Getenv)
}

func applyEnv(s Settings, getenv func(string) string) (Settings, error) {
	if v := getenv(EnvSpawnMin); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, fmt.Errorf("failed to parse %s: %w", EnvSpawnMin, err)
		}
		s.SpawnIntervalMin = f
	}
	if v := getenv(EnvSpawnMax); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, fmt.Errorf("failed to parse %s: %w", EnvSpawnMax, err)
		}
		s.SpawnIntervalMax = f
	}
	if v := getenv(EnvBurstCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("failed to parse %s: %w", EnvBurstCount, err)
		}
		s.BurstCount = n
	}
	if v := getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("failed to parse %s: %w", EnvSeed, err)
		}
		s.Seed = n
	}
	if v := getenv(EnvPprofAddr); v != "" {
		s.PprofAddr = v
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
