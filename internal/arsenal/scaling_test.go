package arsenal

import "testing"

// TestComputedStatsMonotonic verifies damage and fire rate never decrease
// with level for any built-in definition.
func TestComputedStatsMonotonic(t *testing.T) {
	for _, def := range DefaultCatalog().All() {
		t.Run(def.ID, func(t *testing.T) {
			prev := ComputeStats(def, MinLevel)
			for level := MinLevel + 1; level <= MaxLevel; level++ {
				cur := ComputeStats(def, level)
				if cur.Damage < prev.Damage {
					t.Errorf("Level %d damage %v < level %d damage %v", level, cur.Damage, level-1, prev.Damage)
				}
				if cur.FireRate < prev.FireRate {
					t.Errorf("Level %d fire rate %v < level %d fire rate %v", level, cur.FireRate, level-1, prev.FireRate)
				}
				prev = cur
			}
		})
	}
}

// TestComputeStatsPure verifies referential transparency: recomputing with
// the same inputs yields identical output.
func TestComputeStatsPure(t *testing.T) {
	def, _ := DefaultCatalog().Get("spread_shot")
	for level := MinLevel; level <= MaxLevel; level++ {
		a := ComputeStats(def, level)
		b := ComputeStats(def, level)
		if a != b {
			t.Errorf("Level %d: stats differ between calls: %+v vs %+v", level, a, b)
		}
	}
}

func TestComputeStatsLevelClamping(t *testing.T) {
	def, _ := DefaultCatalog().Get("basic_laser")

	tests := []struct {
		name  string
		level int
		want  ComputedStats
	}{
		{"below minimum clamps to 1", -3, ComputeStats(def, 1)},
		{"zero clamps to 1", 0, ComputeStats(def, 1)},
		{"above maximum clamps to 5", 9, ComputeStats(def, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStats(def, tt.level); got != tt.want {
				t.Errorf("ComputeStats(%d) = %+v, want %+v", tt.level, got, tt.want)
			}
		})
	}
}

func TestPierceCount(t *testing.T) {
	piercing, _ := DefaultCatalog().Get("orbital_blades")
	plain, _ := DefaultCatalog().Get("basic_laser")

	tests := []struct {
		level int
		want  int
	}{
		{1, 3},
		{2, 3},
		{3, 4},
		{4, 4},
		{5, 5},
	}
	for _, tt := range tests {
		if got := ComputeStats(piercing, tt.level).PierceCount; got != tt.want {
			t.Errorf("Level %d pierce count = %d, want %d", tt.level, got, tt.want)
		}
	}

	for level := MinLevel; level <= MaxLevel; level++ {
		if got := ComputeStats(plain, level).PierceCount; got != 0 {
			t.Errorf("Non-piercing weapon should have pierce count 0 at level %d, got %d", level, got)
		}
	}
}

func TestSpreadReductionFloorsAtZero(t *testing.T) {
	def := WeaponDefinition{ID: "narrow", BaseSpread: 3, BehaviorType: BehaviorSpread, Config: SpreadConfig{}}
	if got := ComputeStats(def, 5).Spread; got != 0 {
		t.Errorf("Spread should floor at 0, got %v", got)
	}
}

func TestSpreadShotLevelThreeCount(t *testing.T) {
	def, _ := DefaultCatalog().Get("spread_shot")
	stats := ComputeStats(def, 3)
	if stats.ProjectileCount != 6 {
		t.Errorf("spread_shot at level 3 should fire 6 projectiles, got %d", stats.ProjectileCount)
	}
}
