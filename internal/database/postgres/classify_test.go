package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/raiddata/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"serialization", &pgconn.PgError{Code: PgErrorCodeSerializationFailure}, domain.ErrTransient},
		{"deadlock", &pgconn.PgError{Code: PgErrorCodeDeadlockDetected}, domain.ErrTransient},
		{"lock not available", &pgconn.PgError{Code: PgErrorCodeLockNotAvailable}, domain.ErrTransient},
		{"unique", &pgconn.PgError{Code: PgErrorCodeUniqueViolation}, domain.ErrConstraintViolation},
		{"foreign key", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: PgErrorCodeForeignKeyViolation}), domain.ErrConstraintViolation},
		{"check", &pgconn.PgError{Code: PgErrorCodeCheckViolation}, domain.ErrConstraintViolation},
		{"already transient", fmt.Errorf("%w: x", domain.ErrTransient), domain.ErrTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.err), tt.want)
		})
	}

	t.Run("syntax error is left alone", func(t *testing.T) {
		err := classify(&pgconn.PgError{Code: "42601"})
		assert.False(t, errors.Is(err, domain.ErrTransient))
		assert.False(t, errors.Is(err, domain.ErrConstraintViolation))
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, classify(nil))
	})
}

func TestLookup(t *testing.T) {
	err := lookup(pgx.ErrNoRows, domain.ErrItemNotFound, "rubber")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Contains(t, err.Error(), "rubber")

	err = lookup(context.Canceled, domain.ErrItemNotFound, "rubber")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrItemNotFound)
}

func TestAffected(t *testing.T) {
	assert.NoError(t, affected(pgconn.NewCommandTag("UPDATE 1"), nil, domain.ErrWeaponNotFound, "x"))
	assert.ErrorIs(t, affected(pgconn.NewCommandTag("UPDATE 0"), nil, domain.ErrWeaponNotFound, "x"), domain.ErrWeaponNotFound)
}

func TestEncodeJSON(t *testing.T) {
	var nilMods domain.Modifiers
	b, err := encodeJSON("modifiers", nilMods)
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(b))

	var q *domain.QuickUse
	b, err = encodeNullableJSON("quick_use", q)
	assert.NoError(t, err)
	assert.Nil(t, b)

	var out *domain.QuickUse
	assert.NoError(t, decodeJSON("quick_use", []byte(`{"category":"healing","stats":[]}`), &out))
	assert.Equal(t, domain.QuickUseHealing, out.Category)
	assert.Error(t, decodeJSON("quick_use", []byte(`{`), &out))
}
