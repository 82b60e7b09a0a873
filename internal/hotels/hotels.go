// Package hotels is a small independent sub-domain: hotels keyed by a unique
// name with a positive room count.
package hotels

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/storefront-api/internal/guard"
	"github.com/angelmondragon/storefront-api/internal/repo"
	"github.com/angelmondragon/storefront-api/pkg/db"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
	"github.com/angelmondragon/storefront-api/pkg/validation"
)

const (
	nameMaxLen     = 60
	postcodeMaxLen = 10
	nameTaken      = "An hotel with the same name already exists!"
)

type HotelDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Rooms    int    `json:"rooms"`
	Postcode string `json:"postcode"`
}

// CreateHotelInput carries raw request values; Rooms is parsed by the service.
type CreateHotelInput struct {
	Name     string
	Rooms    string
	Postcode string
}

type Repository struct {
	base repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

func (r *Repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.base.Exists(ctx, &models.Hotel{}, "name = ?", name)
}

func (r *Repository) Create(ctx context.Context, hotel *models.Hotel) error {
	return r.base.DB(ctx).Omit(clause.Associations).Create(hotel).Error
}

func (r *Repository) List(ctx context.Context) ([]models.Hotel, error) {
	var rows []models.Hotel
	err := r.base.DB(ctx).Order("name").Find(&rows).Error
	return rows, err
}

type Service interface {
	Create(ctx context.Context, in CreateHotelInput) (*HotelDTO, error)
	List(ctx context.Context) ([]HotelDTO, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("hotel repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, in CreateHotelInput) (*HotelDTO, error) {
	rooms, err := validation.ParsePositiveInt(in.Rooms)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "The number of rooms should be a positive integer.")
	}
	if err := validation.Text(nameMaxLen).Check(in.Name); err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "Invalid hotel name %s", in.Name)
	}
	if in.Postcode != "" {
		if err := validation.Text(postcodeMaxLen).Check(in.Postcode); err != nil {
			return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "Invalid postcode %s", in.Postcode)
		}
	}

	err = guard.Enforce(ctx, guard.Absent(nameTaken, func(ctx context.Context) (bool, error) {
		return s.repo.ExistsByName(ctx, in.Name)
	}))
	if err != nil {
		return nil, db.TranslateReadError(err, "check hotel name")
	}

	hotel := models.Hotel{Name: in.Name, Rooms: int(rooms), Postcode: in.Postcode}
	if err := s.repo.Create(ctx, &hotel); err != nil {
		return nil, db.TranslateWriteError(err, "insert hotel", db.ConstraintMessages{Unique: nameTaken})
	}
	return &HotelDTO{ID: hotel.ID, Name: hotel.Name, Rooms: hotel.Rooms, Postcode: hotel.Postcode}, nil
}

func (s *service) List(ctx context.Context) ([]HotelDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.TranslateReadError(err, "list hotels")
	}
	out := make([]HotelDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, HotelDTO{ID: row.ID, Name: row.Name, Rooms: row.Rooms, Postcode: row.Postcode})
	}
	return out, nil
}
