package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"

	"github.com/GreicodexJM/MyREST/internal/errs"
)

// MySQL error numbers this gateway distinguishes.
// Full list: https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	codeDuplicateEntry  = 1062
	codeNoReferencedRow = 1452
	codeRowIsReferenced = 1451
	codeBadFieldError   = 1054
	codeParseError      = 1064
	codeUnknownTable    = 1146
	codeAccessDenied    = 1045
	codeConnRefused     = 2003
	codeUnknownDatabase = 1049
	codeUnknownHost     = 1044
	codeUnknownDB2      = 1046
	codeTooManyConns    = 1040
	codeLockWaitTimeout = 1205
)

// mapError translates a driver error into *errs.Error. Conflict codes
// (unique/FK violations) become ErrKindConflict so handlers surface 400
// with the driver's error payload, per §7's error handling design.
func mapError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.Wrap(errs.ErrKindNotFound, msg, err)
	}

	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return errs.Wrap(classifyMySQLCode(mysqlErr.Number), fmt.Sprintf("%s: %s", msg, mysqlErr.Message), err)
	}

	return errs.Wrap(errs.ErrKindQueryFailed, msg, err)
}

func classifyMySQLCode(code uint16) errs.ErrKind {
	switch code {
	case codeDuplicateEntry, codeNoReferencedRow, codeRowIsReferenced:
		return errs.ErrKindConflict
	case codeAccessDenied, codeConnRefused, codeUnknownDatabase, codeUnknownHost, codeUnknownDB2, codeTooManyConns:
		return errs.ErrKindConnectionFailed
	case codeLockWaitTimeout:
		return errs.ErrKindTimeout
	case codeBadFieldError, codeParseError, codeUnknownTable:
		return errs.ErrKindQueryFailed
	default:
		return errs.ErrKindQueryFailed
	}
}
