package taxes

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

func (s *Service) List(ctx context.Context, params shared.ListParams) ([]Tax, error) {
	return s.repo.List(ctx, params.Normalize())
}

func (s *Service) Get(ctx context.Context, id int64) (Tax, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateTaxRequest) (Tax, error) {
	if err := s.validate.Struct(req); err != nil {
		return Tax{}, shared.Validation(err)
	}

	var created Tax
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		created, err = repo.Create(ctx, Tax{
			TaxDesc:   req.TaxDesc,
			IGST:      req.IGST,
			CGST:      req.CGST,
			SGST:      req.SGST,
			CreatedBy: req.CreatedBy,
		})
		return err
	})
	if err != nil {
		return Tax{}, fmt.Errorf("create tax: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTaxRequest) (Tax, error) {
	if err := s.validate.Struct(req); err != nil {
		return Tax{}, shared.Validation(err)
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Update(ctx, id, req)
	})
	if err != nil {
		return Tax{}, fmt.Errorf("update tax: %w", err)
	}
	return s.repo.Get(ctx, id)
}
