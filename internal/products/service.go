package products

import (
	"context"
	"fmt"

	"github.com/angelmondragon/storefront-api/internal/guard"
	"github.com/angelmondragon/storefront-api/pkg/db"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
	"github.com/angelmondragon/storefront-api/pkg/validation"
)

const nameMaxLen = 60

// Service exposes product creation and the filtered product listing.
type Service interface {
	Create(ctx context.Context, in CreateProductInput) (*ProductDTO, error)
	List(ctx context.Context, filter ListingFilter) ([]ListingRowDTO, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, in CreateProductInput) (*ProductDTO, error) {
	if err := validation.Text(nameMaxLen).Check(in.ProductName); err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "Invalid product name %s", in.ProductName)
	}

	taken := fmt.Sprintf("This product %s already exists!", in.ProductName)
	err := guard.Enforce(ctx, guard.Absent(taken, func(ctx context.Context) (bool, error) {
		return s.repo.ExistsByName(ctx, in.ProductName)
	}))
	if err != nil {
		return nil, db.TranslateReadError(err, "check product name")
	}

	product := models.Product{ProductName: in.ProductName}
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, db.TranslateWriteError(err, "insert product", db.ConstraintMessages{Unique: taken})
	}
	dto := toDTO(product)
	return &dto, nil
}

func (s *service) List(ctx context.Context, filter ListingFilter) ([]ListingRowDTO, error) {
	if filter.Name != nil {
		if err := validation.Text(nameMaxLen).Check(*filter.Name); err != nil {
			return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "Invalid product name %s", *filter.Name)
		}
	}
	rows, err := s.repo.Listing(ctx, ComposeListing(filter))
	if err != nil {
		return nil, db.TranslateReadError(err, "list products")
	}
	return rows, nil
}
