package scheduletypes

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

func (s *Service) List(ctx context.Context, params shared.ListParams) ([]ScheduleType, error) {
	return s.repo.List(ctx, params.Normalize())
}

func (s *Service) Get(ctx context.Context, id int64) (ScheduleType, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateScheduleTypeRequest) (ScheduleType, error) {
	if err := s.validate.Struct(req); err != nil {
		return ScheduleType{}, shared.Validation(err)
	}

	var created ScheduleType
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		created, err = repo.Create(ctx, ScheduleType{
			SchTypeName: req.SchTypeName,
			CreatedBy:   req.CreatedBy,
		})
		return err
	})
	if err != nil {
		return ScheduleType{}, fmt.Errorf("create schedule type: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateScheduleTypeRequest) (ScheduleType, error) {
	if err := s.validate.Struct(req); err != nil {
		return ScheduleType{}, shared.Validation(err)
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Update(ctx, id, req)
	})
	if err != nil {
		return ScheduleType{}, fmt.Errorf("update schedule type: %w", err)
	}
	return s.repo.Get(ctx, id)
}
