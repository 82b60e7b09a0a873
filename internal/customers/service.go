package customers

import (
	"context"
	"fmt"

	"github.com/angelmondragon/storefront-api/internal/guard"
	"github.com/angelmondragon/storefront-api/pkg/db"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
	"github.com/angelmondragon/storefront-api/pkg/validation"
)

const (
	nameMaxLen    = 60
	addressMaxLen = 120
)

// Service runs the guarded customer mutations and reads.
type Service interface {
	Create(ctx context.Context, in CreateCustomerInput) (*CustomerDTO, error)
	Update(ctx context.Context, id int64, in UpdateCustomerInput) (*CustomerDTO, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]CustomerDTO, error)
	Get(ctx context.Context, id int64) (*CustomerDTO, error)
	ListOrders(ctx context.Context, id int64) ([]OrderLineDTO, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, in CreateCustomerInput) (*CustomerDTO, error) {
	id, err := validation.ParsePositiveInt(in.ID)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "The customer id %s should be a positive integer.", in.ID)
	}
	if err := validateFields(in.Name, in.Address, in.City, in.Country); err != nil {
		return nil, err
	}

	idTaken := fmt.Sprintf("FATAL ERROR: A customer with the same id %d already exists!", id)
	nameTaken := fmt.Sprintf("FATAL ERROR: A customer with the same name %s already exists!", in.Name)

	err = guard.Enforce(ctx,
		guard.Absent(idTaken, func(ctx context.Context) (bool, error) {
			return s.repo.ExistsByID(ctx, id)
		}),
		guard.Absent(nameTaken, func(ctx context.Context) (bool, error) {
			return s.repo.ExistsByName(ctx, in.Name)
		}),
	)
	if err != nil {
		return nil, db.TranslateReadError(err, "check customer uniqueness")
	}

	customer := models.Customer{
		ID:      id,
		Name:    in.Name,
		Address: in.Address,
		City:    in.City,
		Country: in.Country,
	}
	if err := s.repo.Create(ctx, &customer); err != nil {
		return nil, db.TranslateWriteError(err, "insert customer", db.ConstraintMessages{
			Unique:      idTaken,
			UniqueByKey: map[string]string{"name": nameTaken},
		})
	}

	dto := toDTO(customer)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id int64, in UpdateCustomerInput) (*CustomerDTO, error) {
	if err := validateFields(in.Name, in.Address, in.City, in.Country); err != nil {
		return nil, err
	}

	affected, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, db.TranslateWriteError(err, "update customer", db.ConstraintMessages{
			Unique: fmt.Sprintf("FATAL ERROR: A customer with the same name %s already exists!", in.Name),
		})
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotMatched, "This customer does not exist please check your data!")
	}

	return &CustomerDTO{ID: id, Name: in.Name, Address: in.Address, City: in.City, Country: in.Country}, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	blocked := fmt.Sprintf("This Customer %d has existing orders and cannot be deleted", id)

	err := guard.Enforce(ctx, func(ctx context.Context) (guard.Decision, error) {
		has, err := s.repo.HasOrders(ctx, id)
		if err != nil {
			return guard.Decision{}, err
		}
		if has {
			return guard.Block(blocked), nil
		}
		return guard.Allow(), nil
	})
	if err != nil {
		return db.TranslateReadError(err, "check customer orders")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return db.TranslateWriteError(err, "delete customer", db.ConstraintMessages{
			ForeignKey:     blocked,
			ForeignKeyCode: pkgerrors.CodeBlocked,
		})
	}
	if affected == 0 {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "Customer %d not found", id)
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]CustomerDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.TranslateReadError(err, "list customers")
	}
	out := make([]CustomerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*CustomerDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "Customer %d not found", id)
		}
		return nil, db.TranslateReadError(err, "load customer")
	}
	dto := toDTO(*row)
	return &dto, nil
}

func (s *service) ListOrders(ctx context.Context, id int64) ([]OrderLineDTO, error) {
	rows, err := s.repo.ListOrderLines(ctx, id)
	if err != nil {
		return nil, db.TranslateReadError(err, "list customer orders")
	}
	return rows, nil
}

func validateFields(name string, address, city, country *string) error {
	if err := validation.Name(nameMaxLen).Check(name); err != nil {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "Invalid customer name %s only English characters accepted", name)
	}
	if city != nil {
		if err := validation.Name(nameMaxLen).Check(*city); err != nil {
			return pkgerrors.Newf(pkgerrors.CodeValidation, "Invalid city name %s only English characters accepted", *city)
		}
	}
	if country != nil {
		if err := validation.Name(nameMaxLen).Check(*country); err != nil {
			return pkgerrors.Newf(pkgerrors.CodeValidation, "Invalid country name %s only English characters accepted", *country)
		}
	}
	if address != nil && len(*address) > addressMaxLen {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "Invalid address, must be at most %d characters", addressMaxLen)
	}
	return nil
}
