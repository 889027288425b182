package categories

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

func (s *Service) List(ctx context.Context, params shared.ListParams) ([]Category, error) {
	return s.repo.List(ctx, params.Normalize())
}

func (s *Service) Get(ctx context.Context, id int64) (Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return Category{}, shared.Validation(err)
	}

	var created Category
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		created, err = repo.Create(ctx, Category{
			ProdCatName: req.ProdCatName,
			CreatedBy:   req.CreatedBy,
		})
		return err
	})
	if err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return Category{}, shared.Validation(err)
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Update(ctx, id, req)
	})
	if err != nil {
		return Category{}, fmt.Errorf("update category: %w", err)
	}
	return s.repo.Get(ctx, id)
}
