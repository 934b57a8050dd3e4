// internal/event/types.go
package event

import "github.com/WChurchill/qualified-immunity/internal/types"

const (
	EntitySpawned   EventType = "EntitySpawned"   // Data: types.EntityID
	EntityDestroyed EventType = "EntityDestroyed" // Data: types.EntityID
	HostInfected    EventType = "HostInfected"    // Data: Encounter{A: hostile, B: host}
	VirusAttached   EventType = "VirusAttached"   // Data: Encounter{A: hostile, B: host}
	HostDied        EventType = "HostDied"        // Data: HostDeath
	WaveStarted     EventType = "WaveStarted"     // Data: WaveInfo
	AllySpawned     EventType = "AllySpawned"     // Data: types.EntityID
)

// Encounter names the two participants of a resolved collision.
type Encounter struct {
	A, B types.EntityID
}

// HostDeath describes a host that burst.
type HostDeath struct {
	Host      types.EntityID
	Offspring []types.EntityID
}

// WaveInfo describes a spawned wave.
type WaveInfo struct {
	Number int
	Count  int
}
