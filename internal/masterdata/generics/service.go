package generics

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

func (s *Service) List(ctx context.Context, params ListGenericsParams) ([]Generic, error) {
	params.ListParams = params.Normalize()
	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id int64) (Generic, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateGenericRequest) (Generic, error) {
	if err := s.validate.Struct(req); err != nil {
		return Generic{}, shared.Validation(err)
	}

	var created Generic
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		created, err = repo.Create(ctx, Generic{
			GenericName: req.GenericName,
			ProdCatCode: req.ProdCatCode,
			CreatedBy:   req.CreatedBy,
		})
		return err
	})
	if err != nil {
		return Generic{}, fmt.Errorf("create generic: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateGenericRequest) (Generic, error) {
	if err := s.validate.Struct(req); err != nil {
		return Generic{}, shared.Validation(err)
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Update(ctx, id, req)
	})
	if err != nil {
		return Generic{}, fmt.Errorf("update generic: %w", err)
	}
	return s.repo.Get(ctx, id)
}
