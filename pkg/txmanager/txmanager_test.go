package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityService/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr error

	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	commitErrs []error // ошибка Commit для каждой попытки по порядку

	txs []*fakeTx
}

func (b *fakeBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &fakeTx{}
	if len(b.txs) < len(b.commitErrs) {
		tx.commitErr = b.commitErrs[len(b.txs)]
	}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func serializationFailure() error {
	return &pq.Error{Code: "40001"}
}

func TestTransactionManager_DoSerializable(t *testing.T) {
	t.Run("commits on first attempt", func(t *testing.T) {
		db := &fakeBeginner{}
		mgr := NewTransactionManager(db)

		err := mgr.DoSerializable(context.Background(), func(context.Context) error { return nil })
		require.NoError(t, err)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].committed)
	})

	t.Run("retries after serialization failure on commit", func(t *testing.T) {
		db := &fakeBeginner{commitErrs: []error{serializationFailure(), nil}}
		mgr := NewTransactionManager(db)

		calls := 0
		err := mgr.DoSerializable(context.Background(), func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		require.Len(t, db.txs, 2)
		assert.True(t, db.txs[1].committed)
	})

	t.Run("retries when fn surfaces serialization failure", func(t *testing.T) {
		db := &fakeBeginner{}
		mgr := NewTransactionManager(db)

		calls := 0
		err := mgr.DoSerializable(context.Background(), func(context.Context) error {
			calls++
			if calls == 1 {
				return serializationFailure()
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.True(t, db.txs[0].rolledBack)
		assert.True(t, db.txs[1].committed)
	})

	t.Run("does not retry business errors", func(t *testing.T) {
		db := &fakeBeginner{}
		mgr := NewTransactionManager(db)

		wantErr := errors.New("slot is not available")
		calls := 0
		err := mgr.DoSerializable(context.Background(), func(context.Context) error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 1, calls)
		assert.True(t, db.txs[0].rolledBack)
		assert.False(t, db.txs[0].committed)
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		db := &fakeBeginner{}
		mgr := NewTransactionManager(db)

		calls := 0
		err := mgr.DoSerializable(context.Background(), func(context.Context) error {
			calls++
			return serializationFailure()
		})
		require.Error(t, err)
		assert.Equal(t, maxSerializableRetries, calls)

		var pqErr *pq.Error
		assert.True(t, errors.As(err, &pqErr))
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&pq.Error{Code: "40001"}))
	assert.True(t, isRetryable(&pq.Error{Code: "40P01"}))
	assert.False(t, isRetryable(&pq.Error{Code: "23505"}))
	assert.False(t, isRetryable(errors.New("plain error")))
}
