package productgenerics

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

func (s *Service) List(ctx context.Context, params ListProductGenericsParams) ([]ProductGeneric, error) {
	params.ListParams = params.Normalize()
	return s.repo.List(ctx, params)
}

func (s *Service) Create(ctx context.Context, req CreateProductGenericRequest) (ProductGeneric, error) {
	if err := s.validate.Struct(req); err != nil {
		return ProductGeneric{}, shared.Validation(err)
	}

	var created ProductGeneric
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		// Pre-check gives a clean conflict answer; the unique constraint
		// on ("prodCode", "genericCode") still backstops concurrent writers.
		exists, err := repo.ExistsPair(ctx, req.ProdCode, req.GenericCode)
		if err != nil {
			return err
		}
		if exists {
			return shared.ErrDuplicateMapping
		}
		created, err = repo.Create(ctx, ProductGeneric{
			ProdCode:        req.ProdCode,
			GenericCode:     req.GenericCode,
			GenericStrength: req.GenericStrength,
			CreatedBy:       req.CreatedBy,
		})
		return err
	})
	if err != nil {
		return ProductGeneric{}, fmt.Errorf("create product generic: %w", err)
	}
	return created, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete product generic: %w", err)
	}
	return nil
}
