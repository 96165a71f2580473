package game

//go:generate go tool mockgen -destination=./mocks/hud_mock.go -package=mocks . HUD

// HUD receives display updates. Calls are fire-and-forget; the game never
// reads anything back.
type HUD interface {
	Score(score int)
	Level(name string, n, of int)
	Steps(n, limit int)
	Lives(lives int)
}

// NopHUD discards every update.
type NopHUD struct{}

func (NopHUD) Score(int) {}
func (NopHUD) Level(string, int, int) {}
func (NopHUD) Steps(int, int) {}
func (NopHUD) Lives(int) {}
