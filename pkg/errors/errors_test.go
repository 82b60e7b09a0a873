package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		expose    bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", expose: true},
		{code: CodeConflict, status: http.StatusBadRequest, publicMsg: "conflict detected", expose: true},
		{code: CodeReference, status: http.StatusBadRequest, publicMsg: "referenced resource does not exist", expose: true},
		{code: CodeBlocked, status: http.StatusBadRequest, publicMsg: "resource has dependents", expose: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found", expose: true},
		{code: CodeNotMatched, status: http.StatusBadRequest, publicMsg: "no matching resource", expose: true},
		{code: CodeIdempotency, status: http.StatusConflict, publicMsg: "idempotency key reused", expose: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "Internal Server Error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "Service Unavailable", retryable: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.ExposeMessage != tt.expose {
			t.Fatalf("code %s expected expose %v got %v", tt.code, tt.expose, meta.ExposeMessage)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestPublicMessageHidesInternalText(t *testing.T) {
	err := Wrap(CodeInternal, stdErrors.New("dial tcp 10.0.0.1:5432: refused"), "insert customer")
	if got := err.PublicMessage(); got != "Internal Server Error" {
		t.Fatalf("internal error leaked %q", got)
	}

	conflict := Newf(CodeConflict, "This product %s already exists!", "Tea")
	if got := conflict.PublicMessage(); got != "This product Tea already exists!" {
		t.Fatalf("unexpected conflict message %q", got)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "ctx")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeConflict {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeBlocked, "has orders"))
	if got := As(err); got == nil || got.Code() != CodeBlocked {
		t.Fatalf("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
	if CodeOf(stdErrors.New("plain")) != CodeInternal {
		t.Fatalf("untyped errors should map to internal")
	}
}

func TestDumpClassifiesDriverErrors(t *testing.T) {
	pgxUnique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: PGUniqueViolation, ConstraintName: "customers_name_key", TableName: "customers"})
	d := Dump(pgxUnique)
	if !d.IsUniqueViolation() || d.PGConstraint != "customers_name_key" || d.PGTable != "customers" {
		t.Fatalf("unexpected pgx dump %+v", d)
	}

	pqFK := fmt.Errorf("insert: %w", &pq.Error{Code: PGForeignKeyViolation, Constraint: "orders_customer_id_fkey"})
	d = Dump(pqFK)
	if !d.IsForeignKeyViolation() || d.IsUniqueViolation() {
		t.Fatalf("unexpected pq dump %+v", d)
	}

	sqliteUnique := stdErrors.New("UNIQUE constraint failed: products.product_name")
	if !Dump(sqliteUnique).IsUniqueViolation() {
		t.Fatalf("expected sqlite unique classification")
	}

	if d := Dump(stdErrors.New("connection reset")); d.IsUniqueViolation() || d.IsForeignKeyViolation() {
		t.Fatalf("plain errors must not classify as constraint violations")
	}
}
