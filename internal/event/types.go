// internal/event/types.go
package event

const (
	GameStarted     EventType = "GameStarted"     // Нажата кнопка Play
	BulletFired     EventType = "BulletFired"     // Снаряд выпущен
	AliensDestroyed EventType = "AliensDestroyed" // За кадр сбиты пришельцы
	ShipLost        EventType = "ShipLost"        // Потеряна жизнь, игра продолжается
	LevelCleared    EventType = "LevelCleared"
	GameOver        EventType = "GameOver" // Жизни кончились
)

// AliensDestroyedData — нагрузка AliensDestroyed
type AliensDestroyedData struct {
	Count int
	Score int
}

// ShipLostData — нагрузка ShipLost и GameOver
type ShipLostData struct {
	ShipsLeft int
}

// LevelClearedData — нагрузка LevelCleared
type LevelClearedData struct {
	Level int // новый уровень
}
