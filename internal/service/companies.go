package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/repo"
	"github.com/carrierx/carrierx/internal/util"
)

type CompanyService struct {
	Repo *repo.GormRepo
}

type CompanyPage struct {
	Companies  []models.Company `json:"companies"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int64            `json:"totalPages"`
}

func (s *CompanyService) List(ctx context.Context, premium bool, page, pageSize int) (*CompanyPage, error) {
	if page < 1 {
		page = 1
	}
	offset, limit := util.Calculate(page, pageSize)

	total, companies, err := s.Repo.ListCompanies(ctx, premium, offset, limit)
	if err != nil {
		return nil, err
	}

	return &CompanyPage{
		Companies:  companies,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: util.TotalPages(total, limit),
	}, nil
}

type CompanyDetail struct {
	Company *models.Company `json:"company"`
	Jobs    []models.Job    `json:"jobs"`
}

func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*CompanyDetail, error) {
	company, err := s.Repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	jobs, err := s.Repo.ActiveJobsForCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CompanyDetail{Company: company, Jobs: jobs}, nil
}
