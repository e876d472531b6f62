package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpile/internal/domain/stock"
	"stockpile/internal/domain/transactions/sale"
)

func TestExtractDBColumns_EmbeddedCatalog(t *testing.T) {
	cols := ExtractDBColumns[stock.Stock]()

	assert.ElementsMatch(t, []string{
		"id", "created_at", "updated_at", "name", "version", "quantity",
	}, cols)
}

func TestExtractDBColumns_FlatStruct(t *testing.T) {
	cols := ExtractDBColumns[sale.Item]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "stock_id")
	assert.Contains(t, cols, "discount")
	assert.Contains(t, cols, "total_price")
	assert.NotContains(t, cols, "")
}

func TestStructToMap(t *testing.T) {
	st := stock.New("central")

	m := StructToMap(st)
	require.NotNil(t, m)

	assert.Equal(t, st.ID, m["id"])
	assert.Equal(t, "central", m["name"])
	assert.Equal(t, 1, m["version"])
	assert.Contains(t, m, "quantity")
}

func TestStructToMap_SkipsUntaggedFields(t *testing.T) {
	type untagged struct {
		A string `db:"a"`
		B string
		C string `db:"-"`
	}

	m := StructToMap(untagged{A: "x", B: "y", C: "z"})
	assert.Equal(t, map[string]any{"a": "x"}, m)
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
}
