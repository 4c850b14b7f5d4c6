package config

// DifficultyModel maps the cumulative score to fall speed and spawn cadence.
// It is a pure function of the score: nothing is accumulated between calls.
type DifficultyModel struct {
	cfg DifficultyConfig
}

// NewDifficultyModel creates a difficulty model.
func NewDifficultyModel(cfg DifficultyConfig) *DifficultyModel {
	return &DifficultyModel{cfg: cfg}
}

// At returns (fallSpeed, spawnInterval) for the given score.
// fallSpeed never decreases and never exceeds MaxSpeed; spawnInterval never
// increases and never drops below MinInterval.
func (d *DifficultyModel) At(score int) (fallSpeed, spawnInterval int) {
	return d.FallSpeed(score), d.SpawnInterval(score)
}

// FallSpeed returns the vertical velocity shared by every treat.
func (d *DifficultyModel) FallSpeed(score int) int {
	if !d.cfg.Enabled || d.cfg.SpeedStep <= 0 {
		return min(d.cfg.BaseSpeed, d.cfg.MaxSpeed)
	}
	score = max(score, 0)
	return min(d.cfg.BaseSpeed+score/d.cfg.SpeedStep, d.cfg.MaxSpeed)
}

// SpawnInterval returns the number of frames the spawner waits between treats.
func (d *DifficultyModel) SpawnInterval(score int) int {
	if !d.cfg.Enabled {
		return max(d.cfg.BaseInterval, d.cfg.MinInterval)
	}
	score = max(score, 0)
	return max(d.cfg.MinInterval, d.cfg.BaseInterval-score*d.cfg.IntervalDecay)
}
