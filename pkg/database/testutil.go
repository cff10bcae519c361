package database

import (
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

// NewMockPool returns a pgxmock pool that satisfies the DBTX interface, so
// repositories can be constructed against it in tests. Tests should finish by
// calling ExpectationsWereMet() on the returned pool.
func NewMockPool() (pgxmock.PgxPoolIface, error) {
	return pgxmock.NewPool()
}
