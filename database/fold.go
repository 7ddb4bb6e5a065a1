package database

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"
)

// foldFunc is the SQL name of the Unicode-aware lower-casing function. SQLite's
// built-in lower() only folds ASCII, so search uses this on the stored side and
// foldCase on the query side.
const foldFunc = "unicode_lower"

// cgoDriverName is the mattn driver registered with foldFunc on every connection
const cgoDriverName = "sqlite3_unicode"

func init() {
	sql.Register(cgoDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(foldFunc, foldCase, true)
		},
	})

	if err := sqlite.RegisterDeterministicScalarFunction(foldFunc, 1, foldValue); err != nil {
		panic(fmt.Sprintf("register %s: %v", foldFunc, err))
	}
}

func foldCase(s string) string {
	return strings.ToLower(s)
}

func foldValue(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return foldCase(v), nil
	case []byte:
		return foldCase(string(v)), nil
	default:
		return v, nil
	}
}

// sqlDriverName maps a configured driver to the name registered with database/sql
func sqlDriverName(driver string) string {
	if driver == DriverCGO {
		return cgoDriverName
	}
	return driver
}
