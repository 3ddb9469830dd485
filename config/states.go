package config

// StateID identifies a combatant state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	// Player states
	Idle StateID = iota
	Run
	Jump
	Attack1
	Attack2
	Attack3
	Parry
	Dash
	Hurt
	Die

	// Boss states
	BossIdle
	BossMove
	BossAttack1
	BossAttack2
	BossUltimate
	BossDie
)

// StateToFileName maps StateID to the corresponding sprite sheet filename prefix.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Run:     "run",
	Jump:    "jump",
	Attack1: "attack1",
	Attack2: "attack2",
	Attack3: "attack3",
	Parry:   "parry",
	Dash:    "dash",
	Hurt:    "hurt",
	Die:     "die",

	BossIdle:     "idle",
	BossMove:     "move",
	BossAttack1:  "attack1",
	BossAttack2:  "attack2",
	BossUltimate: "ultimate",
	BossDie:      "die",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// IsPlayerAttack reports whether the state is one of the three player attacks.
func (s StateID) IsPlayerAttack() bool {
	return s == Attack1 || s == Attack2 || s == Attack3
}

// IsBossAttack reports whether the state is a boss attack (ultimate included).
func (s StateID) IsBossAttack() bool {
	return s == BossAttack1 || s == BossAttack2 || s == BossUltimate
}
