// internal/component/player.go
package component

// Player marks the user-controlled cell.
type Player struct{}

// ActionParams holds the boost state of a player.
type ActionParams struct {
	BoostedSpeed            float64
	RemainingSecs           float64 // boost is active while >= 0
	ExtraSecsPerBoostLevel  float64
	ExtraSpeedPerBoostLevel float64
}

// Charges holds the charge meters shown on the HUD.
type Charges struct {
	Boost          float64
	BoostMax       float64
	Duplication    float64
	DuplicationMax float64
}

// BoostFraction returns the boost meter in [0, 1].
func (c *Charges) BoostFraction() float64 {
	if c.BoostMax <= 0 {
		return 0
	}
	return c.Boost / c.BoostMax
}

// DuplicationFraction returns the duplication meter in [0, 1].
func (c *Charges) DuplicationFraction() float64 {
	if c.DuplicationMax <= 0 {
		return 0
	}
	return c.Duplication / c.DuplicationMax
}
