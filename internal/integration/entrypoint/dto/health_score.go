// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/card-tracker/backend/internal/domain/entity"
)

// HealthComponentResponse represents one scored component of the health score.
type HealthComponentResponse struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Tip      string `json:"tip"`
}

// HealthScoreResponse represents the financial health score.
type HealthScoreResponse struct {
	Score      int                       `json:"score"`
	Components []HealthComponentResponse `json:"components"`
	Trend      string                    `json:"trend"`
}

// ToHealthScoreResponse converts a domain HealthScore to its DTO.
func ToHealthScoreResponse(health *entity.HealthScore) HealthScoreResponse {
	components := make([]HealthComponentResponse, 0, len(health.Components))
	for _, component := range health.Components {
		components = append(components, HealthComponentResponse{
			Name:     component.Name,
			Score:    component.Score,
			MaxScore: component.MaxScore,
			Tip:      component.Tip,
		})
	}

	return HealthScoreResponse{
		Score:      health.Score,
		Components: components,
		Trend:      string(health.Trend),
	}
}
