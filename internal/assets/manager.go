// internal/assets/manager.go
package assets

import (
	_ "image/png"
	"log"

	"alien-invasion/internal/config"
	"alien-invasion/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	_ "golang.org/x/image/webp"
)

// Manager загружает и кэширует спрайты и шрифты игры.
// Отсутствующий спрайт не ошибка: рисующий слой заменит его прямоугольником.
type Manager struct {
	images map[render.SpriteID]*ebiten.Image
	faces  map[render.FontID]font.Face
}

func NewManager() *Manager {
	return &Manager{
		images: make(map[render.SpriteID]*ebiten.Image),
		faces:  make(map[render.FontID]font.Face),
	}
}

// Load загружает всё, что перечислено в настройках.
func (m *Manager) Load(settings *config.Settings) {
	files := map[render.SpriteID]string{
		render.SpriteBackground: settings.BgFile,
		render.SpriteShip:       settings.ShipFile,
		render.SpriteAlien:      settings.AlienFile,
		render.SpriteBullet:     settings.BulletFile,
	}
	for id, path := range files {
		m.loadImage(id, path)
	}

	faces := LoadFaces(settings.FontFile, float64(settings.HUDFontSize), float64(settings.ButtonFontSize))
	m.faces[render.FontHUD] = faces[0]
	m.faces[render.FontButton] = faces[1]
}

func (m *Manager) loadImage(id render.SpriteID, path string) {
	if _, ok := m.images[id]; ok {
		return
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("WARNING: Failed to load image %s: %v", path, err)
		return
	}
	m.images[id] = img
	log.Printf("Successfully loaded image %s", path)
}

// Image возвращает спрайт или nil, если он не загружен.
func (m *Manager) Image(id render.SpriteID) *ebiten.Image {
	return m.images[id]
}

// Face возвращает шрифт; незагруженный размер получает HUD-шрифт.
func (m *Manager) Face(id render.FontID) font.Face {
	if f, ok := m.faces[id]; ok {
		return f
	}
	return m.faces[render.FontHUD]
}

// Cleanup освобождает изображения.
func (m *Manager) Cleanup() {
	for id, img := range m.images {
		img.Deallocate()
		delete(m.images, id)
	}
}
