package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
	"github.com/angelmondragon/storefront-api/pkg/logger"
	"github.com/angelmondragon/storefront-api/pkg/types"
)

// WriteSuccess writes a read result (entity or list) as-is.
func WriteSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

// WriteMessage writes the {message} body used by every mutation response.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, types.MessageBody{Message: message})
}

// WriteError translates err into its status code and {message} body. Only
// messages of caller-facing codes are exposed; everything else is replaced by
// the code's public message and logged with its full chain.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	if logg != nil {
		logError(ctx, logg, meta, err)
	}

	WriteMessage(w, meta.HTTPStatus, typed.PublicMessage())
}

func logError(ctx context.Context, logg *logger.Logger, meta pkgerrors.Metadata, err error) {
	dump := pkgerrors.Dump(err)
	if meta.HTTPStatus < http.StatusInternalServerError {
		switch dump.Code {
		case pkgerrors.CodeConflict, pkgerrors.CodeReference, pkgerrors.CodeBlocked:
			ctx = logg.WithField(ctx, "error_code", dump.Code)
			logg.Warn(ctx, "request.rejected: "+dump.TopMessage)
		}
		return
	}

	fields := map[string]any{
		"error":         dump.TopMessage,
		"error_code":    dump.Code,
		"error_chain":   dump.Chain,
		"pg_code":       dump.PGCode,
		"pg_detail":     dump.PGDetail,
		"pg_table":      dump.PGTable,
		"pg_constraint": dump.PGConstraint,
	}
	ctx = logg.WithFields(ctx, fields)
	logg.Error(ctx, "request.error", err)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
