package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Boss   = donburi.NewTag().SetName("Boss")
)

// Resolv tags for collision queries
const (
	ResolvPlayer = "Player"
	ResolvBoss   = "Boss"
)
