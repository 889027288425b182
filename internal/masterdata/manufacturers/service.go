package manufacturers

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pharma-erp/pharma-erp/internal/masterdata/shared"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

func (s *Service) List(ctx context.Context, params shared.ListParams) ([]Manufacturer, error) {
	return s.repo.List(ctx, params.Normalize())
}

func (s *Service) Get(ctx context.Context, id int64) (Manufacturer, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateManufacturerRequest) (Manufacturer, error) {
	if err := s.validate.Struct(req); err != nil {
		return Manufacturer{}, shared.Validation(err)
	}

	var created Manufacturer
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		created, err = repo.Create(ctx, Manufacturer{
			MfrName:      req.MfrName,
			MfrShortName: req.MfrShortName,
			Address:      req.Address,
			City:         req.City,
			State:        req.State,
			Pin:          req.Pin,
			CPName:       req.CPName,
			CPPhone:      req.CPPhone,
			Email:        req.Email,
			CreatedBy:    req.CreatedBy,
		})
		return err
	})
	if err != nil {
		return Manufacturer{}, fmt.Errorf("create manufacturer: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateManufacturerRequest) (Manufacturer, error) {
	if err := s.validate.Struct(req); err != nil {
		return Manufacturer{}, shared.Validation(err)
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Update(ctx, id, req)
	})
	if err != nil {
		return Manufacturer{}, fmt.Errorf("update manufacturer: %w", err)
	}
	return s.repo.Get(ctx, id)
}
