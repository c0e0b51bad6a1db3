package repository

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolationCode is the SQLSTATE Postgres reports for a duplicate key.
const UniqueViolationCode = "23505"

// UnknownConflictValue stands in for a duplicated value that could not be recovered.
const UnknownConflictValue = "x"

// uniqueConstraintColumns maps the unique constraints declared in the migrations
// to the column they guard.
var uniqueConstraintColumns = map[string]string{
	"atletas_cpf_key":              "cpf",
	"categorias_nome_key":          "nome",
	"centros_treinamento_nome_key": "nome",
}

// duplicateKeyPattern matches the "(column)=(value)" fragment Postgres puts in
// duplicate key details.
var duplicateKeyPattern = regexp.MustCompile(`\((\w+)\)=\((.*?)\)`)

// ConflictError reports a write rejected by a uniqueness constraint.
type ConflictError struct {
	Field      string
	Value      string
	Constraint string
	Err        error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a record with %s: %s already exists.", e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// IsConflict reports whether err is, or wraps, a ConflictError.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}

// translateConstraintError converts a unique violation into a ConflictError.
// Any other error is returned unchanged. Field and value come from the driver's
// structured fields when present and from the raw message otherwise; a value
// that cannot be recovered is replaced with UnknownConflictValue.
func translateConstraintError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != UniqueViolationCode {
			return err
		}

		conflict := &ConflictError{
			Field:      uniqueConstraintColumns[pgErr.ConstraintName],
			Value:      UnknownConflictValue,
			Constraint: pgErr.ConstraintName,
			Err:        err,
		}
		if conflict.Field == "" {
			conflict.Field = pgErr.ColumnName
		}

		if field, value, ok := extractDuplicateKey(pgErr.Detail); ok {
			if conflict.Field == "" {
				conflict.Field = field
			}
			if field == conflict.Field {
				conflict.Value = value
			}
		}
		if conflict.Field == "" {
			conflict.Field = "key"
		}

		return conflict
	}

	return translateDuplicateKeyText(err)
}

// translateDuplicateKeyText is the fallback for drivers that only expose the
// error text.
func translateDuplicateKeyText(err error) error {
	msg := err.Error()
	lower := strings.ToLower(msg)
	if !strings.Contains(lower, "duplicate key") &&
		!strings.Contains(lower, "unique constraint") &&
		!strings.Contains(msg, UniqueViolationCode) {
		return err
	}

	conflict := &ConflictError{Field: "key", Value: UnknownConflictValue, Err: err}
	for constraint, column := range uniqueConstraintColumns {
		if strings.Contains(msg, constraint) {
			conflict.Constraint = constraint
			conflict.Field = column
			break
		}
	}

	if field, value, ok := extractDuplicateKey(msg); ok {
		if conflict.Constraint == "" {
			conflict.Field = field
		}
		if field == conflict.Field {
			conflict.Value = value
		}
	}

	return conflict
}

func extractDuplicateKey(text string) (field, value string, ok bool) {
	match := duplicateKeyPattern.FindStringSubmatch(text)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}
