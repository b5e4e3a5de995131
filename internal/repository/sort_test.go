package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause_WhitelistedField(t *testing.T) {
	allowed := map[string]string{
		"name":      "name",
		"updatedAt": "updated_at",
	}
	assert.Equal(t, "name ASC", orderClause(allowed, "name", "ASC"))
	assert.Equal(t, "name ASC", orderClause(allowed, "name", "asc"))
	assert.Equal(t, "name DESC", orderClause(allowed, "name", "DESC"))
}

func TestOrderClause_UnknownFieldFallsBack(t *testing.T) {
	allowed := map[string]string{
		"name":      "name",
		"updatedAt": "updated_at",
	}
	// Unknown sort field — default ordering regardless of direction token.
	assert.Equal(t, "updated_at DESC", orderClause(allowed, "password_hash", "ASC"))
	assert.Equal(t, "updated_at DESC", orderClause(allowed, "", ""))
}

func TestOrderClause_UnknownDirectionFallsBackToDesc(t *testing.T) {
	allowed := map[string]string{
		"name":      "name",
		"updatedAt": "updated_at",
	}
	assert.Equal(t, "name DESC", orderClause(allowed, "name", "ASC; DROP TABLE clients"))
	assert.Equal(t, "name DESC", orderClause(allowed, "name", "random"))
}

func TestOrderClause_QualifiedColumns(t *testing.T) {
	// Joined queries use table-qualified whitelists; the fallback must stay
	// unambiguous too.
	assert.Equal(t, "invoices.order_date ASC", orderClause(invoiceSortColumns, "orderDate", "ASC"))
	assert.Equal(t, "invoices.updated_at DESC", orderClause(invoiceSortColumns, "nope", "ASC"))
}
