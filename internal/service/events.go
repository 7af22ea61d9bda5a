package service

import (
	"context"

	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/repo"
	"github.com/carrierx/carrierx/internal/util"
)

type EventService struct {
	Repo *repo.GormRepo
}

type EventPage struct {
	Events     []models.Event `json:"events"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int64          `json:"totalPages"`
}

func (s *EventService) List(ctx context.Context, page, pageSize int) (*EventPage, error) {
	if page < 1 {
		page = 1
	}
	offset, limit := util.Calculate(page, pageSize)

	total, items, err := s.Repo.ListEvents(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &EventPage{
		Events:     items,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: util.TotalPages(total, limit),
	}, nil
}
