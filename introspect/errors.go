package introspect

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrConnect reports that the database could not be opened or is not a database.
	ErrConnect = errors.New("cannot open database")
	// ErrQuery reports a failed catalog query or row iteration.
	ErrQuery = errors.New("catalog query failed")
	// ErrDecode reports a catalog row that does not have the expected shape.
	ErrDecode = errors.New("cannot decode catalog row")
	// ErrUnsupportedDialect reports an unknown dialect or driver name.
	ErrUnsupportedDialect = errors.New("unsupported dialect")
)

// catalog runs catalog queries and classifies their failures.
type catalog struct {
	db *sql.DB
}

// query runs q and calls scan for every row. Query and iteration failures
// wrap ErrQuery; scan failures wrap ErrDecode.
func (c catalog) query(q string, args []any, scan func(rows *sql.Rows) error) error {
	rows, err := c.db.Query(q, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return nil
}

// queryString returns the single string value produced by q.
func (c catalog) queryString(q string, args ...any) (string, error) {
	var value sql.NullString
	found := false
	err := c.query(q, args, func(rows *sql.Rows) error {
		found = true
		return rows.Scan(&value)
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: no rows returned", ErrDecode)
	}
	return value.String, nil
}
