package hud

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const barWidth = 20

// Reading is what the HUD shows for one frame.
type Reading struct {
	Name       string
	Speed      float64
	Bonus      float64
	MaxBonus   float64
	Grounded   bool
	WindowOpen bool
	Shots      int
	Hits       int
}

type View struct {
	screen tcell.Screen
	cfg    Config
	meter  *Meter
}

func NewView(screen tcell.Screen, cfg Config, fps int) *View {
	cfg = cfg.Normalized()
	return &View{screen: screen, cfg: cfg, meter: NewMeter(cfg, fps)}
}

func (v *View) Meter() *Meter {
	return v.meter
}

// Draw renders r and shows the frame.
func (v *View) Draw(r Reading) {
	v.meter.Update(r.Speed)
	scale := v.meter.scale

	base := tcell.StyleDefault
	label := base.Foreground(tcell.ColorGray)
	v.screen.Clear()

	v.put(0, 0, "strafe", base.Bold(true))
	v.put(8, 0, r.Name, base)

	v.put(0, 1, "speed", label)
	v.put(8, 1, v.meter.Text(), base)
	v.put(20, 1, Bar(v.meter.Value(), v.cfg.BarMaxSpeed*scale, barWidth), base.Foreground(tcell.ColorAqua))

	v.put(0, 2, "bonus", label)
	v.put(8, 2, fmt.Sprintf("%5.2f", r.Bonus), base)
	v.put(20, 2, Bar(r.Bonus, r.MaxBonus, barWidth), base.Foreground(tcell.ColorYellow))

	v.put(0, 3, "window", label)
	switch {
	case r.WindowOpen:
		v.put(8, 3, "OPEN", base.Foreground(tcell.ColorGreen).Bold(true))
	case r.Grounded:
		v.put(8, 3, "closed", base.Foreground(tcell.ColorRed))
	default:
		v.put(8, 3, "air", label)
	}

	v.put(0, 4, "shots", label)
	v.put(8, 4, fmt.Sprintf("%d  hits %d", r.Shots, r.Hits), base)
	v.screen.Show()
}

func (v *View) put(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
