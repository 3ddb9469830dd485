package systems

import (
	"math"
	"testing"

	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
)

func TestAdvanceBarTweenRetargetsOnDamage(t *testing.T) {
	shown, target, tween := advanceBarTween(100, 100, nil, 80, 0.016)

	if target != 80 {
		t.Fatalf("target = %v, want 80", target)
	}
	if tween == nil {
		t.Fatal("no drain tween started for the new target")
	}
	if shown >= 100 || shown < 80 {
		t.Fatalf("shown = %v, want draining between 80 and 100", shown)
	}
}

func TestAdvanceBarTweenFinishes(t *testing.T) {
	shown, target, tween := advanceBarTween(100, 100, nil, 80,
		float32(cfg.HUD.DrainDuration)+0.1)

	if math.Abs(shown-80) > 1e-3 {
		t.Fatalf("shown = %v, want settled at 80", shown)
	}
	if target != 80 {
		t.Fatalf("target = %v, want 80", target)
	}
	if tween != nil {
		t.Fatal("tween still running after the full drain duration")
	}
}

func TestAdvanceBarTweenIdleWithoutChange(t *testing.T) {
	shown, target, tween := advanceBarTween(55, 55, nil, 55, 0.016)

	if shown != 55 || target != 55 || tween != nil {
		t.Fatalf("got shown=%v target=%v tween=%v, want untouched state", shown, target, tween)
	}
}

func TestUpdateHUDTracksHealth(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.016)

	hud := GetOrCreateHUD(e)
	if hud.PlayerShown != float64(cfg.Player.Health) {
		t.Fatalf("initial shown = %v, want full health", hud.PlayerShown)
	}

	hp := components.Health.Get(playerEntry)
	hp.Current = 40
	UpdateHUD(e)

	if hud.PlayerTarget != 40 {
		t.Fatalf("target = %v, want 40", hud.PlayerTarget)
	}
	if hud.PlayerShown <= 40 || hud.PlayerShown >= float64(cfg.Player.Health) {
		t.Fatalf("shown = %v, want mid-drain", hud.PlayerShown)
	}
}

func TestBarFraction(t *testing.T) {
	tests := []struct {
		shown float64
		max   int
		want  float64
	}{
		{50, 100, 0.5},
		{-10, 100, 0},
		{150, 100, 1},
		{50, 0, 0},
	}
	for _, tt := range tests {
		if got := barFraction(tt.shown, tt.max); got != tt.want {
			t.Errorf("barFraction(%v, %d) = %v, want %v", tt.shown, tt.max, got, tt.want)
		}
	}
}

func TestPlayerBarColorThresholds(t *testing.T) {
	if playerBarColor(1.0) != cfg.BrightGreen {
		t.Error("full bar not green")
	}
	if playerBarColor(cfg.HUD.WarnThreshold) != cfg.Yellow {
		t.Error("warn bar not yellow")
	}
	if playerBarColor(cfg.HUD.DangerThreshold) != cfg.Red {
		t.Error("danger bar not red")
	}
}
