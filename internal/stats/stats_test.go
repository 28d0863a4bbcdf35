package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"alien-invasion/internal/config"
)

func newSettings() *config.Settings {
	s := config.Default()
	s.InitializeDynamicSettings()
	return s
}

func readRecord(t *testing.T, path string) Record {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
	return r
}

func TestLoadMissingFileCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file", "scores.json")
	store := NewStore(path)

	if hi := store.Load(); hi != 0 {
		t.Errorf("expected 0, got %d", hi)
	}
	if r := readRecord(t, path); r.HiScore != 0 {
		t.Errorf("expected file with hi_score 0, got %d", r.HiScore)
	}
}

func TestLoadBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"malformed", "{hi_score"},
		{"missing key", `{"other": 5}`},
		{"wrong type", `{"hi_score": "lots"}`},
		{"negative", `{"hi_score": -10}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores.json")
			os.WriteFile(path, []byte(tt.content), 0644)

			if hi := NewStore(path).Load(); hi != 0 {
				t.Errorf("expected 0, got %d", hi)
			}
			if r := readRecord(t, path); r.HiScore != 0 {
				t.Errorf("expected rewritten file, got %d", r.HiScore)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	store := NewStore(path)
	if err := store.Save(1250); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hi := store.Load(); hi != 1250 {
		t.Errorf("expected 1250, got %d", hi)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "{\n    \"hi_score\": 1250\n}" {
		t.Errorf("unexpected file layout: %q", data)
	}
}

func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	os.WriteFile(blocker, []byte("x"), 0644)

	// Каталог не создать: на его месте файл
	store := NewStore(filepath.Join(blocker, "scores.json"))
	if err := store.Save(10); err == nil {
		t.Error("expected save error")
	}
}

func TestGameStatsScoring(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	NewStore(path).Save(120)

	gs := NewGameStats(newSettings(), NewStore(path))
	if gs.HiScore != 120 || gs.ShipsLeft != 3 || gs.Level != 1 || gs.Score != 0 {
		t.Fatalf("unexpected initial stats: %+v", gs)
	}

	gs.Update(2)
	if gs.Score != 100 || gs.MaxScore != 100 {
		t.Errorf("expected score and max 100, got %d and %d", gs.Score, gs.MaxScore)
	}
	if gs.HiScore != 120 {
		t.Errorf("hi score should stay 120, got %d", gs.HiScore)
	}

	gs.Update(1)
	if gs.HiScore != 150 {
		t.Errorf("expected hi score to follow the running score, got %d", gs.HiScore)
	}

	gs.Update(0)
	if gs.Score != 150 {
		t.Errorf("expected no change, got %d", gs.Score)
	}
}

func TestResetKeepsPeaks(t *testing.T) {
	gs := NewGameStats(newSettings(), nil)
	gs.Update(4)
	gs.UpdateLevel()
	gs.LoseShip()

	gs.ResetStats()
	if gs.Score != 0 || gs.Level != 1 || gs.ShipsLeft != 3 {
		t.Errorf("unexpected stats after reset: %+v", gs)
	}
	if gs.MaxScore != 200 || gs.HiScore != 200 {
		t.Errorf("expected peaks to survive reset, got max %d hi %d", gs.MaxScore, gs.HiScore)
	}

	// После рестарта пик сессии не обновляется, пока счёт его не превысит
	gs.Update(1)
	if gs.MaxScore != 200 {
		t.Errorf("expected max 200, got %d", gs.MaxScore)
	}
}

func TestLoseShipNeverNegative(t *testing.T) {
	gs := NewGameStats(newSettings(), nil)
	want := []bool{true, true, false, false}
	for i, w := range want {
		if got := gs.LoseShip(); got != w {
			t.Errorf("loss %d: expected %v, got %v", i+1, w, got)
		}
	}
	if gs.ShipsLeft != 0 {
		t.Errorf("expected 0 ships, got %d", gs.ShipsLeft)
	}
}

func TestSaveScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	gs := NewGameStats(newSettings(), NewStore(path))
	gs.Update(3)
	if err := gs.SaveScores(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := readRecord(t, path); r.HiScore != 150 {
		t.Errorf("expected saved 150, got %d", r.HiScore)
	}
}
