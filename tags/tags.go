package tags

import "github.com/yohamta/donburi"

var (
	Dot            = donburi.NewTag().SetName("Dot")
	Obstacle       = donburi.NewTag().SetName("Obstacle")
	MovingObstacle = donburi.NewTag().SetName("MovingObstacle")
)
