// internal/assets/fonts.go
package assets

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFaces загружает TTF один раз и строит по лицу на каждый размер.
// Если шрифт недоступен, все размеры получают встроенный basicfont.
func LoadFaces(path string, sizes ...float64) []font.Face {
	faces, err := loadOpenType(path, sizes)
	if err != nil {
		log.Printf("WARNING: font %s unavailable, using basicfont: %v", path, err)
		faces = make([]font.Face, len(sizes))
		for i := range faces {
			faces[i] = basicfont.Face7x13
		}
	}
	return faces
}

func loadOpenType(path string, sizes []float64) ([]font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	faces := make([]font.Face, 0, len(sizes))
	for _, size := range sizes {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create face of size %v: %w", size, err)
		}
		faces = append(faces, face)
	}
	return faces, nil
}
