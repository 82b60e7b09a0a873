package availability

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-api/internal/guard"
	"github.com/angelmondragon/storefront-api/pkg/db"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
	"github.com/angelmondragon/storefront-api/pkg/validation"
)

const duplicatePairMessage = "ALERT: The combination of Product id and Supplier id already exist please a put method update the values"

// unit_price is stored as numeric(10,2).
const priceScale = 2

var priceCeiling = decimal.New(1, 8)

// AvailabilityInput carries raw request values; the service parses them.
type AvailabilityInput struct {
	ProdID    string
	SuppID    string
	UnitPrice string
}

type AvailabilityDTO struct {
	ProdID    int64           `json:"prod_id"`
	SuppID    int64           `json:"supp_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type existenceProbe interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	Create(ctx context.Context, in AvailabilityInput) (*AvailabilityDTO, error)
	UpdatePrice(ctx context.Context, in AvailabilityInput) (*AvailabilityDTO, error)
}

type service struct {
	repo      *Repository
	products  existenceProbe
	suppliers existenceProbe
}

func NewService(repo *Repository, products, suppliers existenceProbe) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("availability repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if suppliers == nil {
		return nil, fmt.Errorf("supplier repository required")
	}
	return &service{repo: repo, products: products, suppliers: suppliers}, nil
}

func (s *service) Create(ctx context.Context, in AvailabilityInput) (*AvailabilityDTO, error) {
	dto, err := parseInput(in)
	if err != nil {
		return nil, err
	}

	err = guard.Enforce(ctx,
		guard.Exists("product", dto.ProdID, fmt.Sprintf("Product %d does not exist", dto.ProdID), s.products.ExistsByID),
		guard.Exists("supplier", dto.SuppID, fmt.Sprintf("Supplier %d does not exist", dto.SuppID), s.suppliers.ExistsByID),
		guard.Absent(duplicatePairMessage, func(ctx context.Context) (bool, error) {
			return s.repo.ExistsPair(ctx, dto.ProdID, dto.SuppID)
		}),
	)
	if err != nil {
		return nil, db.TranslateReadError(err, "check availability references")
	}

	row := models.ProductAvailability{ProdID: dto.ProdID, SuppID: dto.SuppID, UnitPrice: dto.UnitPrice}
	if err := s.repo.Create(ctx, &row); err != nil {
		return nil, db.TranslateWriteError(err, "insert availability", db.ConstraintMessages{
			Unique:     duplicatePairMessage,
			ForeignKey: fmt.Sprintf("Product %d or supplier %d does not exist", dto.ProdID, dto.SuppID),
		})
	}
	return dto, nil
}

func (s *service) UpdatePrice(ctx context.Context, in AvailabilityInput) (*AvailabilityDTO, error) {
	dto, err := parseInput(in)
	if err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdatePrice(ctx, dto.ProdID, dto.SuppID, dto.UnitPrice)
	if err != nil {
		return nil, db.TranslateWriteError(err, "update availability", db.ConstraintMessages{})
	}
	if affected == 0 {
		return nil, pkgerrors.Newf(pkgerrors.CodeNotMatched, "No availability for product %d and supplier %d", dto.ProdID, dto.SuppID)
	}
	return dto, nil
}

func parseInput(in AvailabilityInput) (*AvailabilityDTO, error) {
	prodID, err := validation.ParsePositiveInt(in.ProdID)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "The product id %s should be a positive integer.", in.ProdID)
	}
	suppID, err := validation.ParsePositiveInt(in.SuppID)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "The supplier id %s should be a positive integer.", in.SuppID)
	}
	price, err := validation.ParsePositiveDecimal(in.UnitPrice)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "The unit price %s should be a positive number.", in.UnitPrice)
	}
	if !price.Equal(price.Truncate(priceScale)) {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "The unit price %s should have at most %d decimal places.", in.UnitPrice, priceScale)
	}
	if price.GreaterThanOrEqual(priceCeiling) {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "The unit price %s should be less than %s.", in.UnitPrice, priceCeiling.String())
	}
	return &AvailabilityDTO{ProdID: prodID, SuppID: suppID, UnitPrice: price}, nil
}
