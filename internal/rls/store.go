package rls

import (
	"context"
	"database/sql"

	"github.com/GreicodexJM/MyREST/internal/errs"
)

// StoreTableName is the table the policy engine reads from and, on first
// use, creates if missing.
const StoreTableName = "rest_gateway_policies"

const createStoreTableSQL = `
CREATE TABLE IF NOT EXISTS ` + "`" + StoreTableName + "`" + ` (
	id                BIGINT AUTO_INCREMENT PRIMARY KEY,
	table_name        VARCHAR(128) NOT NULL,
	policy_name       VARCHAR(128) NOT NULL,
	operation         ENUM('SELECT','INSERT','UPDATE','DELETE','ALL') NOT NULL,
	using_expression  TEXT NOT NULL,
	check_expression  TEXT NULL,
	enabled           TINYINT(1) NOT NULL DEFAULT 1,
	created_at        DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at        DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uq_table_policy (table_name, policy_name),
	KEY idx_table_op_enabled (table_name, operation, enabled)
)`

const selectEnabledPoliciesSQL = `
SELECT id, table_name, policy_name, operation, using_expression, check_expression, enabled, created_at, updated_at
FROM ` + "`" + StoreTableName + "`" + `
WHERE enabled = 1`

// ensureStoreTable issues the idempotent create named in the loader contract.
func ensureStoreTable(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createStoreTableSQL); err != nil {
		return errs.Wrap(errs.ErrKindPolicyLoadError, "failed to ensure policy store table", err)
	}
	return nil
}

// loadEnabledPolicies reads every enabled policy row, fanning ALL out to
// the four concrete operations at load time — never stored that way.
func loadEnabledPolicies(ctx context.Context, db *sql.DB) ([]Policy, error) {
	rows, err := db.QueryContext(ctx, selectEnabledPoliciesSQL)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindPolicyLoadError, "failed to load policies", err)
	}
	defer rows.Close()

	var policies []Policy
	for rows.Next() {
		var p Policy
		var op string
		var enabled bool
		if err := rows.Scan(&p.ID, &p.TableName, &p.PolicyName, &op, &p.UsingExpression,
			&p.CheckExpression, &enabled, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, errs.Wrap(errs.ErrKindPolicyLoadError, "failed to scan policy row", err)
		}
		p.Operation = Operation(op)
		p.Enabled = enabled
		policies = append(policies, fanOut(p)...)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrKindPolicyLoadError, "failed reading policy rows", err)
	}
	return policies, nil
}

// fanOut expands an ALL-operation policy into one Policy value per concrete
// operation; every other policy passes through unchanged.
func fanOut(p Policy) []Policy {
	if p.Operation != OpAll {
		return []Policy{p}
	}
	expanded := make([]Policy, 0, 4)
	for _, op := range []Operation{OpSelect, OpInsert, OpUpdate, OpDelete} {
		clone := p
		clone.Operation = op
		expanded = append(expanded, clone)
	}
	return expanded
}
