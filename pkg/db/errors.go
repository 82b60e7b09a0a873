package db

import (
	"errors"
	"sort"
	"strings"

	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
	"gorm.io/gorm"
)

// ConstraintMessages are the caller-facing texts used when a write trips a
// storage constraint that the invariant pre-checks did not catch.
type ConstraintMessages struct {
	Unique string
	// UniqueByKey picks a more specific message when the violated constraint
	// (or the driver text) mentions the key, e.g. "name".
	UniqueByKey map[string]string
	ForeignKey  string
	// ForeignKeyCode overrides CodeReference, e.g. CodeBlocked for deletes
	// refused because dependent rows still exist.
	ForeignKeyCode pkgerrors.Code
}

// TranslateWriteError maps a failed write onto the error taxonomy. Unique
// violations become CONFLICT, FK violations become REFERENCE_ERROR and
// anything else is an INTERNAL_ERROR wrapping op. Typed errors pass through.
func TranslateWriteError(err error, op string, msgs ConstraintMessages) error {
	if err == nil {
		return nil
	}
	if pkgerrors.As(err) != nil {
		return err
	}
	dump := pkgerrors.Dump(err)
	switch {
	case dump.IsUniqueViolation() && (msgs.Unique != "" || len(msgs.UniqueByKey) > 0):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, uniqueMessage(dump, msgs))
	case dump.IsForeignKeyViolation() && msgs.ForeignKey != "":
		code := msgs.ForeignKeyCode
		if code == "" {
			code = pkgerrors.CodeReference
		}
		return pkgerrors.Wrap(code, err, msgs.ForeignKey)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}

func uniqueMessage(dump pkgerrors.ErrorDump, msgs ConstraintMessages) string {
	haystack := dump.PGConstraint + " " + dump.TopMessage
	keys := make([]string, 0, len(msgs.UniqueByKey))
	for key := range msgs.UniqueByKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(haystack, key) {
			return msgs.UniqueByKey[key]
		}
	}
	if msgs.Unique != "" {
		return msgs.Unique
	}
	return "conflict detected"
}

// TranslateReadError wraps a failed read as INTERNAL_ERROR.
func TranslateReadError(err error, op string) error {
	if err == nil {
		return nil
	}
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}

// IsRecordNotFound reports whether err is gorm's missing-row sentinel.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
