package services

import (
	"context"
	"strconv"
	"strings"

	"shelftrack/internal/models"
	"shelftrack/internal/repositories"
)

// ValidationError reports rejected user input. Callers distinguish it from
// storage failures with errors.As; nothing is written when it is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

var (
	ErrMissingFields = &ValidationError{msg: "name and location are required"}
	ErrInvalidQty    = &ValidationError{msg: "qty must be a non-negative integer"}
)

type ItemService interface {
	Create(ctx context.Context, name, location, qty string) (*models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	Update(ctx context.Context, id int64, name, location, qty string) error
	Delete(ctx context.Context, id int64) error
}

type itemService struct {
	itemRepo repositories.ItemRepository
}

func NewItemService(itemRepo repositories.ItemRepository) ItemService {
	return &itemService{
		itemRepo: itemRepo,
	}
}

// validate trims name and location and parses qty. All three checks run
// before any write so a rejected input never mutates the store.
func validate(name, location, qty string) (string, string, int, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)

	if name == "" || location == "" {
		return "", "", 0, ErrMissingFields
	}

	q, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil || q < 0 {
		return "", "", 0, ErrInvalidQty
	}

	return name, location, q, nil
}

func (s *itemService) Create(ctx context.Context, name, location, qty string) (*models.Item, error) {
	n, l, q, err := validate(name, location, qty)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:     n,
		Location: l,
		Qty:      q,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context) ([]models.Item, error) {
	return s.itemRepo.List(ctx)
}

func (s *itemService) Update(ctx context.Context, id int64, name, location, qty string) error {
	n, l, q, err := validate(name, location, qty)
	if err != nil {
		return err
	}

	return s.itemRepo.Update(ctx, &models.Item{
		ID:       id,
		Name:     n,
		Location: l,
		Qty:      q,
	})
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	return s.itemRepo.Delete(ctx, id)
}
