// internal/component/wave.go
package component

// WaveSpawner is the state of the wave scheduler. Exactly one must exist.
type WaveSpawner struct {
	SpawnRadius   float64 // distance of the cluster origin from the arena centre
	ClusterRadius float64 // spread of a cluster around its origin
	WaveNumber    int     // starts at 1, only increases
	Cooldown      float64 // seconds before the next wave may spawn
}
