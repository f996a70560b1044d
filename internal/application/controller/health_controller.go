package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-relay/internal/domain/usecase/health"
)

type HealthController struct {
	root    *echo.Group
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(root *echo.Group, api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{root: root, api: api, useCase: useCase}
}

// InitHealthRoutes initializes service info and health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.root.GET("/", controller.ServiceInfo)
	controller.api.GET("/health", controller.CheckHealth)
}

// ServiceInfo godoc
// @Summary Service information
// @Description Describe the service, its upstream API and its endpoints
// @Tags health
// @Produce json
// @Success 200 {object} model.ServiceInfo "Service metadata"
// @Router / [get]
func (controller *HealthController) ServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.ServiceInfo())
}

// CheckHealth godoc
// @Summary Health check
// @Description Report that the service is up
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Service is healthy"
// @Router /api/health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.CheckHealth())
}
