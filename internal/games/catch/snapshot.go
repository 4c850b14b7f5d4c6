package catch

// Snapshot captures the simulation state for determinism tests.
type Snapshot struct {
	Frame         int
	Score         int
	Phase         Phase
	PlayerX       int
	Treats        int
	FallSpeed     int
	SpawnInterval int
	SpawnCounter  int
	Unlocked      []string
}

// Snapshot returns the current simulation snapshot.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Frame:         s.Frame,
		Score:         s.Score,
		Phase:         s.Phase,
		PlayerX:       s.Player.X,
		Treats:        len(s.Treats),
		FallSpeed:     s.FallSpeed(),
		SpawnInterval: s.SpawnInterval(),
		SpawnCounter:  s.spawner.Counter(),
		Unlocked:      s.cosmetics.Unlocked(),
	}
}
