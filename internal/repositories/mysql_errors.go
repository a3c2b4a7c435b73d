package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the repositories translate
const (
	mysqlErrDuplicateEntry  uint16 = 1062
	mysqlErrNoReferencedRow uint16 = 1452
)

// mysqlErrorNumber returns the server error number of err, or 0 if err is not a MySQL error
func mysqlErrorNumber(err error) uint16 {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number
	}
	return 0
}

func isDuplicateEntry(err error) bool {
	return mysqlErrorNumber(err) == mysqlErrDuplicateEntry
}

func isMissingReference(err error) bool {
	return mysqlErrorNumber(err) == mysqlErrNoReferencedRow
}
