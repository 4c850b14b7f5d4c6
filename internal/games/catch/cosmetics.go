package catch

import "github.com/vovakirdan/treat-catcher/internal/config"

// Cosmetic names shipped in the default config.
const (
	CosmeticHat = "hat"
	CosmeticBow = "bow"
)

// Cosmetics tracks score-unlocked decorations. Once unlocked a cosmetic
// stays unlocked until Reset.
type Cosmetics struct {
	thresholds []config.CosmeticConfig
	unlocked   map[string]bool
}

// NewCosmetics creates a tracker for the configured thresholds.
func NewCosmetics(thresholds []config.CosmeticConfig) *Cosmetics {
	return &Cosmetics{
		thresholds: thresholds,
		unlocked:   make(map[string]bool, len(thresholds)),
	}
}

// Evaluate unlocks every cosmetic whose threshold the score has reached and
// returns the ones unlocked by this call, in config order.
func (c *Cosmetics) Evaluate(score int) []string {
	var fresh []string
	for _, t := range c.thresholds {
		if score >= t.Threshold && !c.unlocked[t.Name] {
			c.unlocked[t.Name] = true
			fresh = append(fresh, t.Name)
		}
	}
	return fresh
}

// Has reports whether the named cosmetic is unlocked.
func (c *Cosmetics) Has(name string) bool {
	return c.unlocked[name]
}

// Unlocked returns the unlocked cosmetics in config order.
func (c *Cosmetics) Unlocked() []string {
	var names []string
	for _, t := range c.thresholds {
		if c.unlocked[t.Name] {
			names = append(names, t.Name)
		}
	}
	return names
}

// Reset clears all unlocks.
func (c *Cosmetics) Reset() {
	clear(c.unlocked)
}
