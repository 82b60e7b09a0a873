// Package suppliers serves the supplier listing and the supplier existence
// probe used when pricing availability.
package suppliers

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-api/internal/repo"
	"github.com/angelmondragon/storefront-api/pkg/db"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
)

type SupplierDTO struct {
	ID           int64  `json:"id"`
	SupplierName string `json:"supplier_name"`
}

type Repository struct {
	base repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.base.Exists(ctx, &models.Supplier{}, "id = ?", id)
}

func (r *Repository) List(ctx context.Context) ([]models.Supplier, error) {
	var rows []models.Supplier
	err := r.base.DB(ctx).Order("id").Find(&rows).Error
	return rows, err
}

type Service interface {
	List(ctx context.Context) ([]SupplierDTO, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("supplier repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]SupplierDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.TranslateReadError(err, "list suppliers")
	}
	out := make([]SupplierDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, SupplierDTO{ID: row.ID, SupplierName: row.SupplierName})
	}
	return out, nil
}
