package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	if !IsDuplicateConstraintError(dup, "users_username_key") {
		t.Error("expected match on constraint name")
	}
	if !IsDuplicateConstraintError(dup, "") {
		t.Error("empty constraint name should match any unique violation")
	}
	if IsDuplicateConstraintError(dup, "users_email_key") {
		t.Error("different constraint should not match")
	}
	if IsDuplicateConstraintError(errors.New("boom"), "") {
		t.Error("plain error should not match")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("expected foreign key violation")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation is not a foreign key violation")
	}
}
