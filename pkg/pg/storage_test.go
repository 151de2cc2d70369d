package pg_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/pg"
)

type row struct {
	val []byte
	err error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = r.val
	return nil
}

type mockDB struct {
	mock.Mock
}

func (m *mockDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(sql, args)
	return pgconn.CommandTag{}, ret.Error(0)
}

func (m *mockDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	ret := m.Called(sql, args)
	return ret.Get(0).(pgx.Row)
}

func TestStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing key is nil without error", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{}
		db.On("QueryRow", mock.Anything, []any{"p1:userFormData"}).Return(row{err: pgx.ErrNoRows})

		val, err := pg.NewStorage(db).Get(ctx, "p1:userFormData")
		require.NoError(t, err)
		assert.Nil(t, val)
		db.AssertExpectations(t)
	})

	t.Run("stored value", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{}
		db.On("QueryRow", mock.Anything, []any{"p1:userFormStep"}).Return(row{val: []byte("2")})

		val, err := pg.NewStorage(db).Get(ctx, "p1:userFormStep")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), val)
	})

	t.Run("query errors surface", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection reset")
		db := &mockDB{}
		db.On("QueryRow", mock.Anything, mock.Anything).Return(row{err: boom})

		_, err := pg.NewStorage(db).Get(ctx, "k")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("set upserts", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{}
		db.On("Exec", mock.MatchedBy(func(sql string) bool {
			return strings.Contains(sql, "ON CONFLICT (key) DO UPDATE")
		}), []any{"k", []byte("v")}).Return(nil)

		require.NoError(t, pg.NewStorage(db).Set(ctx, "k", []byte("v")))
		db.AssertExpectations(t)
	})

	t.Run("delete removes every key at once", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{}
		db.On("Exec", mock.Anything, []any{[]string{"a", "b"}}).Return(nil).Once()

		s := pg.NewStorage(db)
		require.NoError(t, s.Delete(ctx, "a", "b"))
		require.NoError(t, s.Delete(ctx))
		db.AssertExpectations(t)
	})
}
