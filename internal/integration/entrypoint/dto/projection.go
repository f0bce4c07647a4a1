// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/card-tracker/backend/internal/domain/entity"
)

// LimitReleaseMonthResponse represents one month of the limit release projection.
type LimitReleaseMonthResponse struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	Label           string  `json:"label"`
	CommittedAmount float64 `json:"committed_amount"`
	ReleasedAmount  float64 `json:"released_amount"`
}

// LimitReleaseResponse represents the limit release projection.
type LimitReleaseResponse struct {
	Months []LimitReleaseMonthResponse `json:"months"`
}

// ToLimitReleaseResponse converts the domain projection to its DTO.
func ToLimitReleaseResponse(months []entity.LimitRelease) LimitReleaseResponse {
	resp := LimitReleaseResponse{
		Months: make([]LimitReleaseMonthResponse, 0, len(months)),
	}

	for _, month := range months {
		resp.Months = append(resp.Months, LimitReleaseMonthResponse{
			Year:            month.Year,
			Month:           int(month.Month),
			Label:           month.Label,
			CommittedAmount: month.CommittedAmount.InexactFloat64(),
			ReleasedAmount:  month.ReleasedAmount.InexactFloat64(),
		})
	}

	return resp
}
