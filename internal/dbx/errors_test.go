package dbx

import (
	"errors"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/GreicodexJM/MyREST/internal/errs"
)

func TestClassifyMySQLCode(t *testing.T) {
	cases := map[uint16]errs.ErrKind{
		codeDuplicateEntry:  errs.ErrKindConflict,
		codeNoReferencedRow: errs.ErrKindConflict,
		codeAccessDenied:    errs.ErrKindConnectionFailed,
		codeConnRefused:     errs.ErrKindConnectionFailed,
		codeLockWaitTimeout: errs.ErrKindTimeout,
		codeBadFieldError:   errs.ErrKindQueryFailed,
		9999:                errs.ErrKindQueryFailed,
	}
	for code, want := range cases {
		assert.Equal(t, want, classifyMySQLCode(code))
	}
}

func TestMapError_WrapsMySQLError(t *testing.T) {
	mysqlErr := &gomysql.MySQLError{Number: codeDuplicateEntry, Message: "Duplicate entry"}
	err := mapError(mysqlErr, "insert failed")

	assert.True(t, errs.IsConflict(err))
}

func TestMapError_NilIsNil(t *testing.T) {
	assert.Nil(t, mapError(nil, "whatever"))
}

func TestMapError_GenericErrorIsQueryFailed(t *testing.T) {
	err := mapError(errors.New("boom"), "whatever")
	assert.True(t, errs.IsQueryFailed(err))
}
