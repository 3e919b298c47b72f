// Package render draws arena snapshots to debug frames. It is a pure
// consumer of snapshot data: the simulation exposes ids and positions, this
// layer decides what they look like.
package render

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/robsonek/cosmic-survivors-sub000/internal/arena"
)

const (
	playerRadius     = 14.0
	enemyRadius      = 10.0
	projectileRadius = 4.0
)

// WritePNG renders the snapshot and encodes it as PNG.
func WritePNG(w io.Writer, snap *arena.Snapshot) error {
	dc := Frame(snap)
	if err := dc.EncodePNG(w); err != nil {
		return errors.Wrap(err, "encode frame png")
	}
	return nil
}

// Frame renders the snapshot into a drawing context.
func Frame(snap *arena.Snapshot) *gg.Context {
	dc := gg.NewContext(int(snap.WorldWidth), int(snap.WorldHeight))

	drawBackground(dc, snap)
	drawVortices(dc, snap)
	drawEffects(dc, snap)
	drawEnemies(dc, snap)
	drawProjectiles(dc, snap)
	drawPlayer(dc, snap)

	return dc
}

func drawBackground(dc *gg.Context, snap *arena.Snapshot) {
	dc.SetColor(color.RGBA{12, 12, 28, 255})
	dc.DrawRectangle(0, 0, snap.WorldWidth, snap.WorldHeight)
	dc.Fill()

	// Sparse starfield, deterministic so frames diff cleanly
	dc.SetColor(color.RGBA{255, 255, 255, 90})
	for i := 0; i < 40; i++ {
		x := float64((i * 67) % int(snap.WorldWidth))
		y := float64((i * 47) % int(snap.WorldHeight))
		dc.DrawCircle(x, y, 1)
		dc.Fill()
	}
}

func drawPlayer(dc *gg.Context, snap *arena.Snapshot) {
	// Shadow
	dc.SetColor(color.RGBA{0, 0, 0, 128})
	dc.DrawCircle(snap.Player.X, snap.Player.Y+5, playerRadius)
	dc.Fill()

	dc.SetColor(color.RGBA{240, 240, 255, 255})
	dc.DrawCircle(snap.Player.X, snap.Player.Y, playerRadius)
	dc.Fill()
}

func drawEnemies(dc *gg.Context, snap *arena.Snapshot) {
	for _, en := range snap.Enemies {
		body := color.RGBA{200, 60, 60, 255}
		if en.Slowed {
			body = color.RGBA{110, 160, 220, 255}
		}
		dc.SetColor(body)
		dc.DrawCircle(en.X, en.Y, enemyRadius)
		dc.Fill()

		// Health bar
		if en.MaxHP > 0 {
			frac := en.HP / en.MaxHP
			if frac < 0 {
				frac = 0
			}
			dc.SetColor(color.RGBA{40, 40, 40, 200})
			dc.DrawRectangle(en.X-12, en.Y-enemyRadius-8, 24, 3)
			dc.Fill()
			dc.SetColor(color.RGBA{90, 220, 90, 255})
			dc.DrawRectangle(en.X-12, en.Y-enemyRadius-8, 24*frac, 3)
			dc.Fill()
		}
	}
}

func drawProjectiles(dc *gg.Context, snap *arena.Snapshot) {
	colors := weaponColors(snap)
	for _, p := range snap.Projectiles {
		c := parseHexColor(colors[p.WeaponID])
		dc.SetColor(c)
		dc.DrawCircle(p.X, p.Y, projectileRadius)
		dc.Fill()

		// Faint glow for visibility
		c.A = 80
		dc.SetColor(c)
		dc.DrawCircle(p.X, p.Y, projectileRadius*2)
		dc.Fill()
	}
}

func drawVortices(dc *gg.Context, snap *arena.Snapshot) {
	for _, v := range snap.Vortices {
		dc.SetColor(color.RGBA{160, 90, 200, 60})
		dc.DrawCircle(v.X, v.Y, v.Radius)
		dc.Fill()

		dc.SetColor(color.RGBA{200, 130, 255, 200})
		dc.SetLineWidth(2)
		dc.DrawCircle(v.X, v.Y, v.Radius)
		dc.Stroke()
	}
}

func drawEffects(dc *gg.Context, snap *arena.Snapshot) {
	for _, ef := range snap.Effects {
		alpha := uint8(clampF(ef.TTL/0.5, 0, 1) * 160)
		dc.SetColor(color.RGBA{255, 220, 120, alpha})
		dc.DrawCircle(ef.X, ef.Y, 6)
		dc.Fill()
	}
}

// weaponColors maps weapon id to its catalog color from the snapshot.
func weaponColors(snap *arena.Snapshot) map[string]string {
	m := make(map[string]string, len(snap.Weapons))
	for _, w := range snap.Weapons {
		m[w.ID] = w.Color
	}
	return m
}

// parseHexColor parses "#rrggbb"; unknown input falls back to white.
func parseHexColor(s string) color.RGBA {
	c := color.RGBA{255, 255, 255, 255}
	if len(s) != 7 || s[0] != '#' {
		return c
	}

	hex := func(b byte) uint8 {
		switch {
		case b >= '0' && b <= '9':
			return b - '0'
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10
		}
		return 0
	}

	c.R = hex(s[1])<<4 | hex(s[2])
	c.G = hex(s[3])<<4 | hex(s[4])
	c.B = hex(s[5])<<4 | hex(s[6])
	return c
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
