package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// RateSnapshotRepo is nil when no database is configured.
type RepositoryProvider struct {
	RateSnapshotRepo RateSnapshotRepositoryFacade
}
