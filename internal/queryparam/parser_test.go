package queryparam

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_EqFilter(t *testing.T) {
	values := url.Values{"customerNumber": {"eq.103"}}
	r := Parse(values)

	assert.Len(t, r.Filters, 1)
	assert.Equal(t, "customerNumber", r.Filters[0].Column)
	assert.Equal(t, OpEq, r.Filters[0].Operator)
	assert.Equal(t, float64(103), r.Filters[0].Value)
}

func TestParse_RepeatedKeyProducesMultiplePredicates(t *testing.T) {
	values := url.Values{"value": {"gt.10", "lt.100"}}
	r := Parse(values)
	assert.Len(t, r.Filters, 2)
}

func TestParse_ReservedKeysSkipped(t *testing.T) {
	values := url.Values{
		"select":      {"id,name"},
		"order":       {"id.desc"},
		"limit":       {"5"},
		"offset":      {"10"},
		"on_conflict": {"id"},
		"columns":     {"id"},
		"_fields":     {"id"},
		"_where":      {"anything"},
	}
	r := Parse(values)
	assert.Empty(t, r.Filters)
	assert.Equal(t, "id,name", r.Select)
}

func TestParse_UnknownOperatorDropped(t *testing.T) {
	values := url.Values{"x": {"bogus.1"}}
	r := Parse(values)
	assert.Empty(t, r.Filters)
}

func TestParse_ValueWithDotsReassembled(t *testing.T) {
	values := url.Values{"email": {"eq.jane.doe@example.com"}}
	r := Parse(values)
	assert.Equal(t, "jane.doe@example.com", r.Filters[0].Value)
}

func TestParse_InList(t *testing.T) {
	values := url.Values{"status": {"in.(a,b,c)"}}
	r := Parse(values)
	assert.Equal(t, OpIn, r.Filters[0].Operator)
	assert.Equal(t, []any{"a", "b", "c"}, r.Filters[0].Value)
}

func TestParse_MalformedInListDropped(t *testing.T) {
	values := url.Values{"status": {"in.a,b,c"}}
	r := Parse(values)
	assert.Empty(t, r.Filters)
}

func TestParse_IsNull(t *testing.T) {
	values := url.Values{"deletedAt": {"is.null"}}
	r := Parse(values)
	assert.Equal(t, OpIs, r.Filters[0].Operator)
	assert.Nil(t, r.Filters[0].Value)
}

func TestParse_BooleanLiteralMapsToOneOrZero(t *testing.T) {
	values := url.Values{"active": {"eq.true"}}
	r := Parse(values)
	assert.Equal(t, 1, r.Filters[0].Value)
}

func TestParse_OrderPostgREST(t *testing.T) {
	values := url.Values{"order": {"a.asc,b.desc"}}
	r := Parse(values)
	assert.Equal(t, []OrderTerm{{Column: "a", Direction: Asc}, {Column: "b", Direction: Desc}}, r.Order)
}

func TestParse_OrderLegacySort(t *testing.T) {
	values := url.Values{"_sort": {"a,-b"}}
	r := Parse(values)
	assert.Equal(t, []OrderTerm{{Column: "a", Direction: Asc}, {Column: "b", Direction: Desc}}, r.Order)
}

func TestParse_PaginationDefaults(t *testing.T) {
	r := Parse(url.Values{})
	assert.Equal(t, 20, r.Limit)
	assert.Equal(t, 0, r.Offset)
}

func TestParse_LimitOverridesSize(t *testing.T) {
	values := url.Values{"_size": {"50"}, "limit": {"5"}}
	r := Parse(values)
	assert.Equal(t, 5, r.Limit)
}

func TestParse_SizeCappedAt100(t *testing.T) {
	values := url.Values{"_size": {"500"}}
	r := Parse(values)
	assert.Equal(t, 100, r.Limit)
}

func TestParse_OffsetOverridesLegacyPage(t *testing.T) {
	values := url.Values{"_p": {"2"}, "limit": {"10"}, "offset": {"99"}}
	r := Parse(values)
	assert.Equal(t, 99, r.Offset)
}

func TestParse_LegacyPageComputesOffset(t *testing.T) {
	values := url.Values{"_p": {"2"}, "limit": {"10"}}
	r := Parse(values)
	assert.Equal(t, 11, r.Offset) // (2-1)*10+1
}
