package components

import (
	"testing"

	"github.com/jobbie007/bossfight/assets/animations"
	cfg "github.com/jobbie007/bossfight/config"
)

func newTestAnimData() *AnimationData {
	return &AnimationData{
		Animations: map[cfg.StateID]*animations.Animation{
			cfg.Idle:    animations.New(8, 0.2, true),
			cfg.Attack1: animations.New(3, 0.1, false),
		},
		CurrentState: cfg.Idle,
	}
}

func TestPlaySwitchesAndRestartsClip(t *testing.T) {
	a := newTestAnimData()
	a.Animations[cfg.Attack1].Update(0.2)

	a.Play(cfg.Attack1)
	if a.CurrentState != cfg.Attack1 {
		t.Fatalf("current state = %s, want attack1", a.CurrentState)
	}
	if a.Current().Frame() != 0 {
		t.Fatalf("frame = %d, want restart at 0", a.Current().Frame())
	}
}

func TestPlaySameLoopingClipKeepsPosition(t *testing.T) {
	a := newTestAnimData()
	a.Current().Update(0.45)

	a.Play(cfg.Idle)
	if a.Current().Frame() != 2 {
		t.Fatalf("frame = %d, want 2; re-playing a looping clip must not restart it", a.Current().Frame())
	}
}

func TestPlayRestartsFinishedNonLoopingClip(t *testing.T) {
	a := newTestAnimData()

	a.Play(cfg.Attack1)
	a.Current().Update(1.0)
	if !a.Current().Done() {
		t.Fatal("attack clip not done after a full second")
	}

	// A second swing in the same state replays from frame zero.
	a.Play(cfg.Attack1)
	if a.Current().Frame() != 0 || a.Current().Done() {
		t.Fatalf("frame = %d done = %v, want fresh clip", a.Current().Frame(), a.Current().Done())
	}
}

func TestPlayUnknownStateIsIgnored(t *testing.T) {
	a := newTestAnimData()

	a.Play(cfg.BossUltimate)
	if a.CurrentState != cfg.Idle {
		t.Fatalf("current state = %s, want unchanged idle", a.CurrentState)
	}
	if a.Current() == nil {
		t.Fatal("current clip lost after playing an unknown state")
	}
}
