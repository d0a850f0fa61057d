package dto

import "github.com/google/uuid"

type RecommendationsRequest struct {
	UserID    uuid.UUID `json:"userId"`
	StartDate string    `json:"startDate"` // YYYY-MM-DD
	EndDate   string    `json:"endDate"`   // YYYY-MM-DD
}

type RecommendationsResponse struct {
	Recommendations string `json:"recommendations"`
}
