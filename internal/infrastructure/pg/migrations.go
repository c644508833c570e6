package pg

import (
	"context"
)

const createOperationsTable = `
CREATE TABLE IF NOT EXISTS operations (
	id         SERIAL PRIMARY KEY,
	number1    BIGINT NOT NULL,
	number2    BIGINT NOT NULL,
	operation  VARCHAR(16) NOT NULL,
	result     DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const createPaymentsTable = `
CREATE TABLE IF NOT EXISTS payments (
	id         SERIAL PRIMARY KEY,
	tx_id      UUID NOT NULL UNIQUE,
	amount     NUMERIC NOT NULL,
	status     VARCHAR(16) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создаёт таблицы operations и payments, если их ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	for _, q := range []string{createOperationsTable, createPaymentsTable} {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
