// internal/stats/store.go
package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Record — содержимое файла рекордов.
type Record struct {
	HiScore int `json:"hi_score"`
}

// Store хранит рекорд в JSON-файле. Файл перезаписывается целиком.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load читает рекорд. Отсутствующий, пустой или битый файл означает
// «рекорда ещё нет»: возвращается 0, а файл переписывается заново.
func (s *Store) Load() int {
	if hi, ok := s.read(); ok {
		return hi
	}
	if err := s.Save(0); err != nil {
		log.Printf("WARNING: failed to create scores file: %v", err)
	}
	return 0
}

func (s *Store) read() (int, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARNING: failed to read scores file %s: %v", s.Path, err)
		}
		return 0, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("WARNING: malformed scores file %s: %v", s.Path, err)
		return 0, false
	}
	field, ok := raw["hi_score"]
	if !ok {
		return 0, false
	}
	var hi int
	if err := json.Unmarshal(field, &hi); err != nil || hi < 0 {
		log.Printf("WARNING: invalid hi_score in %s", s.Path)
		return 0, false
	}
	return hi, true
}

// Save записывает рекорд, создавая каталоги при необходимости.
func (s *Store) Save(hiScore int) error {
	data, err := json.MarshalIndent(Record{HiScore: hiScore}, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create scores dir: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scores file %s: %w", s.Path, err)
	}
	return nil
}
