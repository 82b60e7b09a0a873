package validators

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
	"github.com/angelmondragon/storefront-api/pkg/validation"
)

// ParseIDParam reads a path identifier and rejects anything that is not a
// positive integer before any query runs. badMessage receives the raw value.
func ParseIDParam(r *http.Request, name string, badMessage func(raw string) string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := validation.ParsePositiveInt(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, badMessage(raw))
	}
	return id, nil
}
