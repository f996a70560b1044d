package health

import (
	"time"

	"weather-relay/internal/domain/model"
)

// Info describes the running service
type Info struct {
	Service     string
	DisplayName string
	Version     string
	API         string
	APIName     string
	Endpoints   map[string]string
}

type healthUseCase struct {
	info Info
	now  func() time.Time
}

func NewHealthUseCase(info Info, now func() time.Time) UseCase {
	if now == nil {
		now = time.Now
	}
	return &healthUseCase{info: info, now: now}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	return model.HealthResponse{
		Status:    model.StatusHealthy,
		Timestamp: model.FormatTimestamp(useCase.now()),
		Service:   useCase.info.Service,
		API:       useCase.info.API,
		Version:   useCase.info.Version,
	}
}

func (useCase *healthUseCase) ServiceInfo() model.ServiceInfo {
	endpoints := make(map[string]string, len(useCase.info.Endpoints))
	for path, description := range useCase.info.Endpoints {
		endpoints[path] = description
	}

	return model.ServiceInfo{
		Service:   useCase.info.DisplayName,
		Version:   useCase.info.Version,
		API:       useCase.info.APIName,
		Status:    "running",
		Endpoints: endpoints,
	}
}
