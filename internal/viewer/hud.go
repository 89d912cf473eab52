package viewer

import (
	"fmt"

	"github.com/lumenforge/orrery/internal/engine/overlay"
)

const hudScale = 1.5

var sceneHotkeys = []string{
	"1: Rocky Planet",
	"2: Gas Giant + Rings",
	"3: Crystal Planet",
	"4: Lava Planet + Moon",
	"5: Frozen World + Moon",
}

const helpText = "1-5 scene   SPACE pause   M mesh   O open model\n" +
	"drag orbit  scroll zoom   R reset   F12 screenshot\n" +
	"H help      F fps         ESC quit"

// drawHUD renders the scene list, status line, help panel and FPS
// counter on top of the 3D view.
func (v *Viewer) drawHUD() {
	v.overlay.Begin()

	width, height := v.renderer.Size()
	pad := float32(8)

	// Scene list, current entry highlighted.
	_, lineH := v.overlay.MeasureText("M", hudScale)
	listH := lineH*float32(len(sceneHotkeys)+1) + pad*2
	listW := float32(0)
	for _, entry := range sceneHotkeys {
		if w, _ := v.overlay.MeasureText(entry, hudScale); w > listW {
			listW = w
		}
	}
	v.overlay.DrawPanel(pad, pad, listW+pad*2, listH, overlay.ColorPanelBg, overlay.ColorBorder)

	y := pad * 2
	for i, entry := range sceneHotkeys {
		color := overlay.ColorTextDim
		if i == v.current {
			color = overlay.ColorAccent
		}
		v.overlay.DrawText(pad*2, y, entry, hudScale, color)
		y += lineH
	}

	status := "mesh: procedural"
	if v.useModel {
		status = "mesh: " + v.modelPath
	}
	if v.paused {
		status += "   PAUSED"
	}
	v.overlay.DrawText(pad*2, y, status, hudScale, overlay.ColorText)

	if v.showFPS {
		text := fmt.Sprintf("%.0f fps", v.fps)
		w, _ := v.overlay.MeasureText(text, hudScale)
		v.overlay.DrawText(float32(width)-w-pad, pad, text, hudScale, overlay.ColorWarning)
	}

	if v.showHelp {
		w, h := v.overlay.MeasureText(helpText, hudScale)
		x := pad
		yTop := float32(height) - h - pad*3
		v.overlay.DrawPanel(x, yTop, w+pad*2, h+pad*2, overlay.ColorPanelBg, overlay.ColorBorder)
		v.overlay.DrawText(x+pad, yTop+pad, helpText, hudScale, overlay.ColorText)
	}

	v.overlay.End()
}
