package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physim/internal/physics"
)

// Theme colors - dark with an indigo accent
var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 230)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

var hudPanel = rl.Rectangle{X: 10, Y: 10, Width: 300, Height: 250}

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func overHUD(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, hudPanel)
}

func (g *Game) DrawUI(stats physics.BroadPhaseStats, entities int) {
	rl.DrawRectangleRec(hudPanel, colorBgPanel)
	rl.DrawRectangleLinesEx(hudPanel, 1, colorAccent)

	x, y := hudPanel.X+10, hudPanel.Y+10
	if paused := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Paused (P)", g.paused); paused != g.paused {
		g.paused = paused
	}
	y += 24
	if bp := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Broad phase (B)", g.broadPhase); bp != g.broadPhase {
		g.setBroadPhase(bp)
	}
	y += 24
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 130, Height: 22}, "Restart (R)") {
		g.restart()
	}
	if gui.Button(rl.Rectangle{X: x + 140, Y: y, Width: 130, Height: 22}, "Save (F5)") {
		g.save()
	}
	y += 34

	rl.DrawFPS(int32(x), int32(y))
	y += 24

	if g.showStats {
		line := func(text string, color rl.Color) {
			rl.DrawText(text, int32(x), int32(y), 14, color)
			y += 18
		}
		line(fmt.Sprintf("Entities: %d", entities), colorTextSecondary)
		line(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs), rl.Green)
		if g.broadPhase {
			line(fmt.Sprintf("Pairs: %d  Checks: %d", stats.PotentialPairs, stats.ChecksPerformed), colorTextSecondary)
			line(fmt.Sprintf("Saved: %d (%.1f%%)", stats.ChecksSaved, stats.CompressionRatio()*100), rl.Lime)
		} else {
			line("Broad phase off: all pairs", colorTextMuted)
		}
	}

	help := "Right drag: orbit  Wheel: zoom  WASD: pan  Click: kick ball  N: step"
	rl.DrawText(help, 10, int32(rl.GetScreenHeight())-24, 16, colorTextMuted)

	if g.statusTTL > 0 && g.status != "" {
		rl.DrawText(g.status, int32(rl.GetScreenWidth())-rl.MeasureText(g.status, 18)-10, 10, 18, rl.Yellow)
	}
}
