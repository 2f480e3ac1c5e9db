package usecase

// VersionInfo describes the running build.
type VersionInfo struct {
	Env     string
	Version string
	Name    string
}

// HealthUsecase answers liveness and version probes.
type HealthUsecase interface {
	Ping() bool
	Version() VersionInfo
}
