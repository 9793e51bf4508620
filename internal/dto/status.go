package dto

type StatusResponseDTO struct {
	Healthy     bool              `json:"healthy" example:"true"`
	Collections map[string]string `json:"collections"`
}
