package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("time_conflict")
	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "past_date"))
	assert.False(t, IsBusiness(errors.New("boom"), "time_conflict"))
	assert.False(t, IsBusiness(nil, "time_conflict"))
}

func TestIsBusinessUnwrapsChains(t *testing.T) {
	err := fmt.Errorf("create appointment: %w", ErrBusiness("shop_closed"))
	assert.True(t, IsBusiness(err, "shop_closed"))
}

func TestIsExclusionConflict(t *testing.T) {
	assert.True(t, IsExclusionConflict(&pgconn.PgError{Code: "23P01"}))
	assert.True(t, IsExclusionConflict(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})))
	assert.False(t, IsExclusionConflict(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsExclusionConflict(errors.New("boom")))
}
