package model

// ServiceInfo is the metadata served at the root endpoint
type ServiceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	API       string            `json:"api"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}
