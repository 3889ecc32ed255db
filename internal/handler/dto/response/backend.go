package response

import "homestay-api/internal/usecase/shared"

type ServiceInfoResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Version    string            `json:"version"`
	DataSource string            `json:"data_source"`
	Endpoints  map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database,omitempty"`
	Source      string `json:"source,omitempty"`
	RoomsLoaded *int   `json:"rooms_loaded,omitempty"`
	Error       string `json:"error,omitempty"`
}

func FromHealth(h shared.Health) HealthResponse {
	if !h.Healthy {
		res := HealthResponse{Status: "unhealthy"}
		if h.Err != nil {
			res.Error = h.Err.Error()
		}
		return res
	}
	if h.Connected {
		return HealthResponse{Status: "healthy", Database: "connected", Source: h.Source.String()}
	}
	n := h.RoomsLoaded
	return HealthResponse{Status: "healthy", Database: "disconnected", Source: h.Source.String(), RoomsLoaded: &n}
}

type ReconnectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Source  string `json:"source"`
}
