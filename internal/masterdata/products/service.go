package products

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

func (s *Service) List(ctx context.Context, params ListProductsParams) ([]Product, error) {
	params.ListParams = params.Normalize()
	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return Product{}, shared.Validation(err)
	}

	// New products sell by default unless the caller says otherwise.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var created Product
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		created, err = repo.Create(ctx, Product{
			ProdName:     req.ProdName,
			HSNCode:      req.HSNCode,
			Packing:      req.Packing,
			PurUnit:      req.PurUnit,
			SalUnit:      req.SalUnit,
			ProdTypeCode: req.ProdTypeCode,
			MfrCode:      req.MfrCode,
			MRP:          req.MRP,
			PurTaxCode:   req.PurTaxCode,
			SalTaxCode:   req.SalTaxCode,
			SchTypeCode:  req.SchTypeCode,
			IsActive:     isActive,
			InActiveFrom: req.InActiveFrom,
			CreatedBy:    req.CreatedBy,
		})
		return err
	})
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return Product{}, shared.Validation(err)
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Update(ctx, id, req)
	})
	if err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
