package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-AmenityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AmenityService/pkg/txmanager"
)

// TransactionManager вариант transaction manager поверх голого *sql.DB
// Используется, когда метрики выключены и dbmetrics-обёртка не нужна.
// Семантика (включая повтор сериализуемой транзакции при SQLSTATE
// 40001/40P01) общая с txmanager
type TransactionManager struct {
	inner *txmanager.TransactionManager
}

// NewTransactionManager создает transaction manager поверх *sql.DB
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{
		inner: txmanager.NewTransactionManager(sqlBeginner{db: db}),
	}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.Do(ctx, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции
// При конфликте сериализации (SQLSTATE 40001/40P01) повторяет до трёх раз
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoSerializable(ctx, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoReadOnly(ctx, fn)
}

// sqlBeginner адаптирует *sql.DB под txmanager.TxBeginner
// *sql.Tx реализует dbmetrics.TxExecutor
type sqlBeginner struct {
	db *sql.DB
}

var _ txmanager.TxBeginner = sqlBeginner{}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}
