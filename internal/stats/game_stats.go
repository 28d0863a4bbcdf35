// internal/stats/game_stats.go
package stats

import (
	"alien-invasion/internal/config"
)

// GameStats — счётчики сессии: жизни, очки, пик сессии, рекорд и уровень.
type GameStats struct {
	ShipsLeft int
	Score     int
	MaxScore  int // пик текущего запуска
	HiScore   int // пик за все запуски, хранится в файле
	Level     int

	settings *config.Settings
	store    *Store
}

// NewGameStats загружает рекорд из store и сбрасывает счётчики.
func NewGameStats(settings *config.Settings, store *Store) *GameStats {
	gs := &GameStats{settings: settings, store: store}
	if store != nil {
		gs.HiScore = store.Load()
	}
	gs.ResetStats()
	return gs
}

// ResetStats возвращает жизни, очки и уровень к стартовым значениям.
// MaxScore и HiScore переживают рестарт.
func (gs *GameStats) ResetStats() {
	gs.ShipsLeft = gs.settings.Dynamic().StartingShipCount
	gs.Score = 0
	gs.Level = 1
}

// Update начисляет очки за уничтоженных пришельцев и обновляет пики.
func (gs *GameStats) Update(destroyed int) {
	if destroyed <= 0 {
		return
	}
	gs.Score += destroyed * gs.settings.Dynamic().AlienPoints
	if gs.Score > gs.MaxScore {
		gs.MaxScore = gs.Score
	}
	if gs.Score > gs.HiScore {
		gs.HiScore = gs.Score
	}
}

func (gs *GameStats) UpdateLevel() {
	gs.Level++
}

// LoseShip снимает одну жизнь и сообщает, остались ли ещё.
// Ниже нуля счётчик не опускается.
func (gs *GameStats) LoseShip() (remaining bool) {
	if gs.ShipsLeft > 0 {
		gs.ShipsLeft--
	}
	return gs.ShipsLeft > 0
}

// SaveScores записывает рекорд.
func (gs *GameStats) SaveScores() error {
	if gs.store == nil {
		return nil
	}
	return gs.store.Save(gs.HiScore)
}
