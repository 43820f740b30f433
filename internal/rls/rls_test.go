package rls

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

func TestFanOut_AllExpandsToFourOperations(t *testing.T) {
	expanded := fanOut(Policy{TableName: "customers", PolicyName: "owner_only", Operation: OpAll, UsingExpression: "salesRepEmployeeNumber = @request_jwt_claim_employee_id"})
	assert.Len(t, expanded, 4)

	ops := map[Operation]bool{}
	for _, p := range expanded {
		ops[p.Operation] = true
		assert.Equal(t, "customers", p.TableName)
	}
	assert.True(t, ops[OpSelect])
	assert.True(t, ops[OpInsert])
	assert.True(t, ops[OpUpdate])
	assert.True(t, ops[OpDelete])
}

func TestFanOut_NonAllPassesThrough(t *testing.T) {
	expanded := fanOut(Policy{TableName: "customers", Operation: OpSelect, UsingExpression: "1 = 1"})
	assert.Equal(t, []Policy{{TableName: "customers", Operation: OpSelect, UsingExpression: "1 = 1"}}, expanded)
}

func TestBuildIndex_GroupsByTableAndOperation(t *testing.T) {
	policies := []Policy{
		{TableName: "customers", Operation: OpSelect, UsingExpression: "a"},
		{TableName: "customers", Operation: OpSelect, UsingExpression: "b"},
		{TableName: "orders", Operation: OpSelect, UsingExpression: "c"},
	}
	idx := buildIndex(policies)
	assert.Len(t, idx[indexKey{table: "customers", op: OpSelect}], 2)
	assert.Len(t, idx[indexKey{table: "orders", op: OpSelect}], 1)
	assert.Len(t, idx[indexKey{table: "customers", op: OpInsert}], 0)
}

func TestCompose_EmptyYieldsUnrestricted(t *testing.T) {
	assert.Equal(t, "", Compose(nil))
}

func TestCompose_AndsAndParenthesizes(t *testing.T) {
	predicate := Compose([]Policy{
		{UsingExpression: "a = 1"},
		{UsingExpression: "b = 2"},
	})
	assert.Equal(t, "(a = 1) AND (b = 2)", predicate)
}

func TestInject_EmptyPredicateNoChange(t *testing.T) {
	existing := sqlcompiler.Fragment{SQL: "WHERE `status` = ?", Args: []any{"Shipped"}}
	assert.Equal(t, existing, Inject(existing, ""))
}

func TestInject_PrependsWhenNoExistingFilter(t *testing.T) {
	result := Inject(sqlcompiler.Fragment{}, "a = 1")
	assert.Equal(t, "WHERE (a = 1)", result.SQL)
	assert.Empty(t, result.Args)
}

func TestInject_RewritesExistingWhere(t *testing.T) {
	existing := sqlcompiler.Fragment{SQL: "WHERE `status` = ?", Args: []any{"Shipped"}}
	result := Inject(existing, "a = 1")
	assert.Equal(t, "WHERE (a = 1) AND (`status` = ?)", result.SQL)
	assert.Equal(t, []any{"Shipped"}, result.Args)
}

func TestInject_ComposesPerRowPKClause(t *testing.T) {
	pk := sqlcompiler.Fragment{SQL: "WHERE `customerNumber` = ?", Args: []any{int64(103)}}
	result := Inject(pk, "salesRepEmployeeNumber = 1002")
	assert.Equal(t, "WHERE (salesRepEmployeeNumber = 1002) AND (`customerNumber` = ?)", result.SQL)
	assert.Equal(t, []any{int64(103)}, result.Args)
}

func TestEngine_PoliciesForUnloadedIsUnrestricted(t *testing.T) {
	e := &Engine{}
	assert.Empty(t, e.PoliciesFor("customers", OpSelect))
	assert.Equal(t, "", e.Predicate("customers", OpSelect))
	assert.True(t, e.LastReloadedAt().IsZero())
}
