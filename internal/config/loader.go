// internal/config/loader.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Переменные окружения, которыми можно переопределить пути
const (
	EnvConfigFile = "ALIEN_INVASION_CONFIG"
	EnvScoresFile = "ALIEN_INVASION_SCORES"
	EnvAssetsDir  = "ALIEN_INVASION_ASSETS"
	EnvLogFile    = "ALIEN_INVASION_LOG"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load читает JSON-файл и накладывает его поля поверх настроек по умолчанию.
// Поля, которых нет в файле, остаются дефолтными.
func Load(path string) (*Settings, error) {
	s := Default()
	file, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Сначала смотрим, не переопределён ли каталог ассетов: от него зависят остальные пути
	var probe struct {
		AssetsDir string `json:"assets_dir"`
	}
	if err := json.Unmarshal(file, &probe); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if probe.AssetsDir != "" {
		s.SetAssetsDir(probe.AssetsDir)
	}

	if err := json.Unmarshal(file, s); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

// FromEnv собирает настройки с учётом переменных окружения.
// Ошибка чтения файла не фатальна: возвращаются дефолты и ошибка для лога.
func FromEnv() (*Settings, error) {
	var (
		s   = Default()
		err error
	)
	if path := GetEnv(EnvConfigFile, ""); path != "" {
		s, err = Load(path)
	}
	if dir := GetEnv(EnvAssetsDir, ""); dir != "" {
		scores := s.ScoresFile
		s.SetAssetsDir(dir)
		if scores != Default().ScoresFile {
			s.ScoresFile = scores
		}
	}
	s.ScoresFile = GetEnv(EnvScoresFile, s.ScoresFile)
	return s, err
}

func (s *Settings) validate() error {
	if s.ScreenW <= 0 || s.ScreenH <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", s.ScreenW, s.ScreenH)
	}
	if s.AlienW <= 0 || s.AlienH <= 0 || s.ShipW <= 0 || s.ShipH <= 0 {
		return fmt.Errorf("entity sizes must be positive")
	}
	if s.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", s.FPS)
	}
	return nil
}
