package dto

import "snailmail-delivery/internal/domain"

type CalculateRequest struct {
	Origin      domain.LocationInput `json:"origin"`
	Destination domain.LocationInput `json:"destination"`
	Mode        string               `json:"mode,omitempty"`
}

type CalculateResponse struct {
	Success bool                    `json:"success"`
	Data    domain.DeliveryEstimate `json:"data"`
}

type CalculateAllResponse struct {
	Success bool                                             `json:"success"`
	Data    map[domain.TransportMode]domain.DeliveryEstimate `json:"data"`
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
