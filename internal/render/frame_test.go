package render

import (
	"bytes"
	"testing"

	"github.com/robsonek/cosmic-survivors-sub000/internal/arena"
	"github.com/robsonek/cosmic-survivors-sub000/internal/arsenal"
)

func testSnapshot() *arena.Snapshot {
	return &arena.Snapshot{
		Tick:        42,
		WorldWidth:  320,
		WorldHeight: 240,
		Player:      arena.PlayerSnapshot{X: 160, Y: 120},
		Enemies: []arena.EnemySnapshot{
			{ID: "e1", X: 60, Y: 60, HP: 15, MaxHP: 30},
			{ID: "e2", X: 250, Y: 180, HP: 30, MaxHP: 30, Slowed: true},
		},
		Projectiles: []arsenal.ProjectileState{
			{ID: 1, WeaponID: "basic_laser", X: 140, Y: 110},
		},
		Vortices: []arsenal.VortexState{
			{WeaponID: "gravity_vortex", X: 200, Y: 80, Radius: 40},
		},
		Weapons: []arsenal.WeaponState{
			{ID: "basic_laser", Color: "#4fc3f7"},
		},
		Effects: []arena.EffectMarker{
			{Kind: "impact", X: 100, Y: 100, TTL: 0.3},
		},
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testSnapshot()); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	magic := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), magic) {
		t.Error("Output is not a PNG")
	}
}

func TestFrameDimensions(t *testing.T) {
	dc := Frame(testSnapshot())
	if dc.Width() != 320 || dc.Height() != 240 {
		t.Errorf("Frame is %dx%d, want 320x240", dc.Width(), dc.Height())
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{"#4fc3f7", 0x4f, 0xc3, 0xf7},
		{"#FF0000", 0xff, 0, 0},
		{"", 255, 255, 255},
		{"red", 255, 255, 255},
	}

	for _, tt := range tests {
		c := parseHexColor(tt.in)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("parseHexColor(%q) = %v", tt.in, c)
		}
	}
}
