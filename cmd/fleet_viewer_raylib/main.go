// cmd/fleet_viewer_raylib/main.go
package main

import (
	"fmt"

	"alien-invasion/internal/config"
	"alien-invasion/internal/system"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Просмотр раскладки флота: стрелки меняют размер пришельца,
// R возвращает размер по умолчанию.
func main() {
	const (
		screenWidth  = config.ScreenWidth
		screenHeight = config.ScreenHeight
		step         = 5
		minSize      = 5
	)
	backgroundColor := rl.NewColor(10, 10, 25, 255)
	alienColor := rl.NewColor(50, 205, 50, 255)
	gridColor := rl.NewColor(40, 40, 60, 255)

	rl.InitWindow(screenWidth, screenHeight, "Fleet Viewer | Arrows - Alien Size, R - Reset")
	rl.SetTargetFPS(config.FPS)

	alienW, alienH := config.AlienWidth, config.AlienHeight

	for !rl.WindowShouldClose() {
		// --- Обновление ---
		if rl.IsKeyPressed(rl.KeyRight) {
			alienW += step
		}
		if rl.IsKeyPressed(rl.KeyLeft) && alienW-step >= minSize {
			alienW -= step
		}
		if rl.IsKeyPressed(rl.KeyDown) {
			alienH += step
		}
		if rl.IsKeyPressed(rl.KeyUp) && alienH-step >= minSize {
			alienH -= step
		}
		if rl.IsKeyPressed(rl.KeyR) {
			alienW, alienH = config.AlienWidth, config.AlienHeight
		}
		layout := system.ComputeLayout(alienW, alienH, screenWidth, screenHeight)

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		for row := 0; row < layout.Rows; row++ {
			for col := 0; col < layout.Cols; col++ {
				x, y := layout.Position(system.Cell{Row: row, Col: col}, alienW, alienH)
				rl.DrawRectangleLines(int32(x), int32(y), int32(alienW), int32(alienH), gridColor)
			}
		}
		for _, c := range layout.Cells {
			x, y := layout.Position(c, alienW, alienH)
			rl.DrawRectangle(int32(x)+1, int32(y)+1, int32(alienW)-2, int32(alienH)-2, alienColor)
		}

		info := fmt.Sprintf("alien %dx%d  grid %dx%d  aliens %d  offset (%d, %d)",
			alienW, alienH, layout.Cols, layout.Rows, len(layout.Cells), layout.OffsetX, layout.OffsetY)
		rl.DrawText(info, 10, screenHeight-30, 20, rl.RayWhite)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
