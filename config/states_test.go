package config

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state StateID
		want  string
	}{
		{Idle, "idle"},
		{Attack3, "attack3"},
		{BossUltimate, "ultimate"},
		{StateNone, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("StateID(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestAttackClassification(t *testing.T) {
	for _, s := range []StateID{Attack1, Attack2, Attack3} {
		if !s.IsPlayerAttack() {
			t.Errorf("%s not classified as player attack", s)
		}
		if s.IsBossAttack() {
			t.Errorf("%s classified as boss attack", s)
		}
	}
	for _, s := range []StateID{BossAttack1, BossAttack2, BossUltimate} {
		if !s.IsBossAttack() {
			t.Errorf("%s not classified as boss attack", s)
		}
	}
	for _, s := range []StateID{Idle, Parry, Dash, BossMove, BossDie} {
		if s.IsPlayerAttack() || s.IsBossAttack() {
			t.Errorf("%s classified as an attack", s)
		}
	}
}

func TestFrameWindowContains(t *testing.T) {
	w := BossActiveFrames[BossAttack1]

	tests := []struct {
		frame int
		want  bool
	}{
		{w.First - 1, false},
		{w.First, true},
		{w.Last, true},
		{w.Last + 1, false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.frame); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestEveryBossAttackHasActiveFrames(t *testing.T) {
	for _, s := range []StateID{BossAttack1, BossAttack2, BossUltimate} {
		w, ok := BossActiveFrames[s]
		if !ok {
			t.Errorf("no active frame window for %s", s)
			continue
		}
		frames := CharacterAnimations["boss"][s].Frames
		if w.First < 0 || w.Last >= frames {
			t.Errorf("%s window [%d,%d] outside clip of %d frames", s, w.First, w.Last, frames)
		}
	}
}
