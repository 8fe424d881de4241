package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	ShowColliders bool
	Fullscreen    bool
}

var Settings = donburi.NewComponentType[SettingsData]()
