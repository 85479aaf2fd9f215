package job

import (
	"context"
	"time"

	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
)

type PostingResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Workplace     string           `json:"workplace"`
	Location      string           `json:"location"`
	Address       string           `json:"address,omitempty"`
	Category      string           `json:"category"`
	HourlyRate    int              `json:"hourly_rate"`
	Deadline      *time.Time       `json:"deadline,omitempty"`
	RequiredSlots []timeslot.Index `json:"required_slots"`
	CreatedAt     time.Time        `json:"created_at"`
}

func NewPostingResponse(p Posting) PostingResponse {
	return PostingResponse{
		ID:            p.ID,
		Title:         p.Title,
		Workplace:     p.Workplace,
		Location:      p.Location,
		Address:       p.Address,
		Category:      p.Category,
		HourlyRate:    p.HourlyRate,
		Deadline:      p.Deadline,
		RequiredSlots: p.Requirement,
		CreatedAt:     p.CreatedAt,
	}
}

type Service interface {
	List(ctx context.Context) ([]PostingResponse, error)
	Get(ctx context.Context, id string) (PostingResponse, error)
}
