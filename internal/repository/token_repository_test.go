package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenRepo(t *testing.T) (*TokenRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTokenRepo(db), mock
}

func TestValidateRefreshLiveSession(t *testing.T) {
	repo, mock := newTokenRepo(t)
	mock.ExpectQuery("SELECT user_id, expires_at, revoked_at FROM refresh_tokens").
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(42, time.Now().UTC().Add(time.Hour), nil))

	uid, err := repo.ValidateRefresh(context.Background(), "hash-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), uid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateRefreshRejectsRevoked(t *testing.T) {
	repo, mock := newTokenRepo(t)
	mock.ExpectQuery("SELECT user_id, expires_at, revoked_at FROM refresh_tokens").
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(42, time.Now().UTC().Add(time.Hour), time.Now().UTC()))

	_, err := repo.ValidateRefresh(context.Background(), "hash-1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestValidateRefreshRejectsExpired(t *testing.T) {
	repo, mock := newTokenRepo(t)
	mock.ExpectQuery("SELECT user_id, expires_at, revoked_at FROM refresh_tokens").
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(42, time.Now().UTC().Add(-time.Minute), nil))

	_, err := repo.ValidateRefresh(context.Background(), "hash-1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStoreRefreshPrunesExpiredRowsFirst(t *testing.T) {
	repo, mock := newTokenRepo(t)
	exp := time.Now().UTC().Add(24 * time.Hour)
	mock.ExpectExec("DELETE FROM refresh_tokens WHERE user_id=\\? AND expires_at < NOW").
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO refresh_tokens").
		WithArgs(uint64(42), "hash-1", exp).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.StoreRefresh(context.Background(), 42, "hash-1", exp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeByHashOnlyTouchesLiveRows(t *testing.T) {
	repo, mock := newTokenRepo(t)
	mock.ExpectExec("UPDATE refresh_tokens SET revoked_at=NOW\\(\\) WHERE token_hash=\\? AND revoked_at IS NULL").
		WithArgs("hash-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RevokeByHash(context.Background(), "hash-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
