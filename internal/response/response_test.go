package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

func TestContentRange_NonEmptyPageWithoutTotal(t *testing.T) {
	assert.Equal(t, "0-19/*", ContentRange(0, 19, nil))
}

func TestContentRange_NonEmptyPageWithTotal(t *testing.T) {
	total := 122
	assert.Equal(t, "0-19/122", ContentRange(0, 19, &total))
}

func TestContentRange_EmptyPage(t *testing.T) {
	assert.Equal(t, "*/*", ContentRange(20, 19, nil))
	total := 0
	assert.Equal(t, "*/0", ContentRange(20, 19, &total))
}

func TestSingular_ExactlyOneRow(t *testing.T) {
	row := map[string]any{"id": 1}
	got, err := Singular([]map[string]any{row})
	require.NoError(t, err)
	assert.Equal(t, row, got)
}

func TestSingular_ZeroOrManyRowsRejected(t *testing.T) {
	_, err := Singular(nil)
	assert.ErrorIs(t, err, ErrNotSingular)

	_, err = Singular([]map[string]any{{"id": 1}, {"id": 2}})
	assert.ErrorIs(t, err, ErrNotSingular)
}

func TestParsePrefer(t *testing.T) {
	p := ParsePrefer("return=representation, count=exact")
	assert.True(t, p.ReturnRepresentation)
	assert.True(t, p.CountExact)

	p = ParsePrefer("")
	assert.False(t, p.ReturnRepresentation)
	assert.False(t, p.CountExact)
}

func TestParseResolution(t *testing.T) {
	assert.Equal(t, sqlcompiler.InsertMergeDuplicates, ParseResolution("merge-duplicates"))
	assert.Equal(t, sqlcompiler.InsertIgnoreDuplicates, ParseResolution("ignore-duplicates"))
	assert.Equal(t, sqlcompiler.InsertPlain, ParseResolution(""))
	assert.Equal(t, sqlcompiler.InsertPlain, ParseResolution("bogus"))
}

func TestCreateStatus(t *testing.T) {
	assert.Equal(t, http.StatusCreated, CreateStatus(true))
	assert.Equal(t, http.StatusOK, CreateStatus(false))
}
