// internal/config/config.go
package config

import (
	"image/color"
	"path/filepath"
)

const (
	GameName        = "Alien Invasion"
	ScreenWidth     = 1200
	ScreenHeight    = 800
	FPS             = 60
	MaxDeltaTime    = 0.06
	DifficultyScale = 1.1
	StunDuration    = 0.5 // секунды паузы после потери жизни

	ShipWidth  = 60
	ShipHeight = 60

	AlienWidth  = 60
	AlienHeight = 60

	ButtonWidth      = 200
	ButtonHeight     = 50
	ButtonFontSize   = 48
	HUDFontSize      = 20
	HUDPadding       = 10
	LaserVolume      = 0.05
	ImpactVolume     = 0.05
	LaserFadeMillis  = 300
	ImpactFadeMillis = 500
)

// Значения по умолчанию для динамических настроек
const (
	DefaultShipSpeed         = 5.0
	DefaultStartingShipCount = 3
	DefaultBulletSpeed       = 7.0
	DefaultBulletWidth       = 25
	DefaultBulletHeight      = 80
	DefaultBulletAmount      = 5
	DefaultFleetSpeed        = 2.0
	DefaultFleetDirection    = 1
	DefaultAlienPoints       = 50
)

var (
	BackgroundColor = color.RGBA{10, 10, 25, 255}
	ButtonColor     = color.RGBA{255, 0, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	ShipColor       = color.RGBA{70, 130, 180, 255}
	AlienColor      = color.RGBA{50, 205, 50, 255}
	BulletColor     = color.RGBA{255, 215, 0, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
)

// Settings — базовые настройки сессии. Не меняются после загрузки,
// кроме блока Dynamic, который пересоздаётся при рестарте.
type Settings struct {
	Name            string  `json:"name"`
	ScreenW         int     `json:"screen_w"`
	ScreenH         int     `json:"screen_h"`
	FPS             int     `json:"fps"`
	DifficultyScale float64 `json:"difficulty_scale"`
	StunDuration    float64 `json:"stun_duration"`

	ShipW  int `json:"ship_w"`
	ShipH  int `json:"ship_h"`
	AlienW int `json:"alien_w"`
	AlienH int `json:"alien_h"`

	ButtonW        int `json:"button_w"`
	ButtonH        int `json:"button_h"`
	ButtonFontSize int `json:"button_font_size"`
	HUDFontSize    int `json:"hud_font_size"`

	// Пути к ассетам и файлу рекордов
	AssetsDir   string `json:"assets_dir"`
	BgFile      string `json:"bg_file"`
	ShipFile    string `json:"ship_file"`
	AlienFile   string `json:"alien_file"`
	BulletFile  string `json:"bullet_file"`
	LaserSound  string `json:"laser_sound"`
	ImpactSound string `json:"impact_sound"`
	FontFile    string `json:"font_file"`
	ScoresFile  string `json:"scores_file"`

	dynamic     Dynamic
	initialized bool
}

// Dynamic — значения, которые сбрасываются при каждом рестарте
// и масштабируются при переходе на следующий уровень.
type Dynamic struct {
	ShipSpeed         float64
	StartingShipCount int
	BulletSpeed       float64
	BulletW           int
	BulletH           int
	BulletAmount      int
	FleetSpeed        float64
	FleetDirection    int
	FleetDropSpeed    float64
	AlienPoints       int
}

// Default возвращает настройки оригинальной игры. Динамический блок
// не инициализирован: до вызова InitializeDynamicSettings он недоступен.
func Default() *Settings {
	s := &Settings{
		Name:            GameName,
		ScreenW:         ScreenWidth,
		ScreenH:         ScreenHeight,
		FPS:             FPS,
		DifficultyScale: DifficultyScale,
		StunDuration:    StunDuration,
		ShipW:           ShipWidth,
		ShipH:           ShipHeight,
		AlienW:          AlienWidth,
		AlienH:          AlienHeight,
		ButtonW:         ButtonWidth,
		ButtonH:         ButtonHeight,
		ButtonFontSize:  ButtonFontSize,
		HUDFontSize:     HUDFontSize,
		AssetsDir:       "Assets",
	}
	s.SetAssetsDir(s.AssetsDir)
	return s
}

// SetAssetsDir перестраивает все пути к ассетам относительно dir.
func (s *Settings) SetAssetsDir(dir string) {
	s.AssetsDir = dir
	s.BgFile = filepath.Join(dir, "images", "replacement_bg.webp")
	s.ShipFile = filepath.Join(dir, "images", "replacement_ship.png")
	s.AlienFile = filepath.Join(dir, "images", "replacement_enemy.png")
	s.BulletFile = filepath.Join(dir, "images", "replacement_laser.png")
	s.LaserSound = filepath.Join(dir, "sound", "replacement_laser.mp3")
	s.ImpactSound = filepath.Join(dir, "sound", "replacement_impact.mp3")
	s.FontFile = filepath.Join(dir, "Fonts", "replacement_font.ttf")
	s.ScoresFile = filepath.Join(dir, "file", "scores.json")
}

// InitializeDynamicSettings сбрасывает динамические значения к стартовым.
func (s *Settings) InitializeDynamicSettings() {
	s.dynamic = Dynamic{
		ShipSpeed:         DefaultShipSpeed,
		StartingShipCount: DefaultStartingShipCount,
		BulletSpeed:       DefaultBulletSpeed,
		BulletW:           DefaultBulletWidth,
		BulletH:           DefaultBulletHeight,
		BulletAmount:      DefaultBulletAmount,
		FleetSpeed:        DefaultFleetSpeed,
		FleetDirection:    DefaultFleetDirection,
		FleetDropSpeed:    float64(s.AlienH) / 2,
		AlienPoints:       DefaultAlienPoints,
	}
	s.initialized = true
}

// Dynamic возвращает изменяемый блок настроек.
func (s *Settings) Dynamic() *Dynamic {
	if !s.initialized {
		panic("config: dynamic settings read before InitializeDynamicSettings")
	}
	return &s.dynamic
}

// IncreaseDifficulty масштабирует скорости корабля, снарядов и флота.
func (s *Settings) IncreaseDifficulty() {
	d := s.Dynamic()
	d.ShipSpeed *= s.DifficultyScale
	d.BulletSpeed *= s.DifficultyScale
	d.FleetSpeed *= s.DifficultyScale
}
