package model

const StatusHealthy = "healthy"

// HealthResponse represents the health check response of the application
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	API       string `json:"api"`
	Version   string `json:"version"`
}
