package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE values the storage layer reacts to.
const (
	PGUniqueViolation     = "23505"
	PGForeignKeyViolation = "23503"
)

// ErrorDump is the log-only view of an error chain. It never reaches callers.
type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	PGCode       string `json:"pg_code,omitempty"`
	PGConstraint string `json:"pg_constraint,omitempty"`
	PGTable      string `json:"pg_table,omitempty"`
	PGDetail     string `json:"pg_detail,omitempty"`

	// SQLiteConstraint holds the sqlite constraint family (UNIQUE, FOREIGN KEY)
	// parsed from the driver message when no SQLSTATE is available.
	SQLiteConstraint string `json:"sqlite_constraint,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
		Code:       CodeOf(err),
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		d.PGCode = pgxErr.Code
		d.PGConstraint = pgxErr.ConstraintName
		d.PGTable = pgxErr.TableName
		d.PGDetail = pgxErr.Detail
		return d
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		d.PGCode = string(pqErr.Code)
		d.PGConstraint = pqErr.Constraint
		d.PGTable = pqErr.Table
		d.PGDetail = pqErr.Detail
		return d
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		d.SQLiteConstraint = "UNIQUE"
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		d.SQLiteConstraint = "FOREIGN KEY"
	}
	return d
}

// IsUniqueViolation reports whether the chain carries a storage uniqueness failure.
func (d ErrorDump) IsUniqueViolation() bool {
	return d.PGCode == PGUniqueViolation || d.SQLiteConstraint == "UNIQUE"
}

// IsForeignKeyViolation reports whether the chain carries a storage FK failure.
func (d ErrorDump) IsForeignKeyViolation() bool {
	return d.PGCode == PGForeignKeyViolation || d.SQLiteConstraint == "FOREIGN KEY"
}
