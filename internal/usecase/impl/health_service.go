package impl

import (
	"budget/config"
	"budget/internal/usecase"
)

type healthService struct {
	info usecase.VersionInfo
}

// NewHealthService reports the configured environment and build.
func NewHealthService(cfg *config.Config) usecase.HealthUsecase {
	return &healthService{
		info: usecase.VersionInfo{
			Env:     cfg.Env.Env,
			Version: cfg.Env.Version,
			Name:    cfg.Env.ServiceName,
		},
	}
}

func (srv *healthService) Ping() bool {
	return true
}

func (srv *healthService) Version() usecase.VersionInfo {
	return srv.info
}
