package service

// SyncState is the stage of the orchestrator.
type SyncState string

const (
	StateIdle          SyncState = "idle"
	StateResolving     SyncState = "resolving"
	StateFetching      SyncState = "fetching"
	StateStaging       SyncState = "staging"
	StateDecoding      SyncState = "decoding"
	StateMaterializing SyncState = "materializing"
	StateCleaningUp    SyncState = "cleaning_up"
	StateDone          SyncState = "done"
)
