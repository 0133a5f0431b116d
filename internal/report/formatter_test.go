package report

import (
	"encoding/json"
	"testing"

	"capmatrix/internal/aggregate"
	"capmatrix/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = map[string]string{
	"flink": "Apache Flink",
	"spark": "Apache Spark (RDD/DStream based)",
}

func sampleDocument() *domain.TestResultsDocument {
	return &domain.TestResultsDocument{Engines: []domain.EngineResults{
		{Key: "flink", TestCases: []domain.TestCase{
			{Name: "testA", Status: "PASSED", Categories: []string{"a.b.Cat1"}},
			{Name: "testB", Status: "FAILED", Categories: []string{"a.b.Cat2"}},
		}},
		{Key: "spark", TestCases: []domain.TestCase{
			{Name: "testA", Status: "PASSED", Categories: []string{"a.b.Cat1"}},
		}},
		{Key: "samza"},
	}}
}

func format(t *testing.T, doc *domain.TestResultsDocument) domain.OutputDocument {
	t.Helper()
	index := aggregate.New(aggregate.Options{}, nil).Aggregate(doc)
	return NewFormatter(names).Format(index, doc.EngineKeys())
}

func TestFormatter_Format(t *testing.T) {
	out := format(t, sampleDocument())
	matrix := out.CapabilityMatrix

	assert.Equal(t, []domain.Column{
		{Class: "flink", Name: "Apache Flink"},
		{Class: "spark", Name: "Apache Spark (RDD/DStream based)"},
		{Class: "samza"},
	}, matrix.Columns)

	require.Len(t, matrix.Categories, 1)
	group := matrix.Categories[0]
	assert.Equal(t, Description, group.Description)
	assert.Equal(t, Anchor, group.Anchor)
	assert.Equal(t, "fff", group.ColorY)
	assert.Equal(t, "f6f6f6", group.ColorYBorder)
	assert.Equal(t, "f9f9f9", group.ColorP)
	assert.Equal(t, "d8d8d8", group.ColorPBorder)
	assert.Equal(t, "e1e0e0", group.ColorN)
	assert.Equal(t, "bcbcbc", group.ColorNBorder)

	require.Len(t, group.Rows, 2)
	assert.Equal(t, "Cat1", group.Rows[0].Name)
	assert.Equal(t, "Cat2", group.Rows[1].Name)
	for _, row := range group.Rows {
		assert.Len(t, row.Values, 3)
	}
	assert.Equal(t, group.Rows, Rows(out))
}

func TestFormatter_EmptyIndex(t *testing.T) {
	out := NewFormatter(names).Format(domain.NewCategoryIndex(), nil)

	data, err := Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"columns":[]`)
	assert.Contains(t, string(data), `"rows":[]`)
}

func TestMarshal_Shape(t *testing.T) {
	data, err := Marshal(format(t, sampleDocument()))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "\n")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	matrix := decoded["capability_matrix"].(map[string]any)
	columns := matrix["columns"].([]any)
	require.Len(t, columns, 3)
	assert.Equal(t, map[string]any{"class": "samza"}, columns[2])

	group := matrix["categories"].([]any)[0].(map[string]any)
	for _, key := range []string{"description", "anchor", "color-y", "color-yb", "color-p", "color-pb", "color-n", "color-nb", "rows"} {
		assert.Contains(t, group, key)
	}

	row := group["rows"].([]any)[0].(map[string]any)
	assert.Equal(t, "Cat1", row["name"])
	assert.NotContains(t, row, "Category")

	values := row["values"].([]any)
	assert.Equal(t, map[string]any{
		"class": "flink",
		"l1":    "Yes",
		"l2":    "fully supported",
		"l3":    []any{map[string]any{"name": "testA", "status": "PASSED"}},
	}, values[0])
	assert.Equal(t, map[string]any{
		"class": "samza",
		"l1":    "Not supported",
		"l4":    []any{map[string]any{"name": "testA", "status": ""}},
	}, values[2])

	cat2 := group["rows"].([]any)[1].(map[string]any)["values"].([]any)
	assert.Equal(t, map[string]any{
		"class": "flink",
		"l4":    []any{map[string]any{"name": "testB", "status": "FAILED"}},
	}, cat2[0], "a cell with only failures has no label")
}

func TestMarshal_NoHTMLEscaping(t *testing.T) {
	doc := &domain.TestResultsDocument{Engines: []domain.EngineResults{
		{Key: "flink", TestCases: []domain.TestCase{
			{Name: "test<T>&co", Status: "PASSED", Categories: []string{"x.Cat"}},
		}},
	}}

	data, err := Marshal(format(t, doc))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"test<T>&co"`)
}

func TestMarshal_Idempotent(t *testing.T) {
	first, err := Marshal(format(t, sampleDocument()))
	require.NoError(t, err)
	second, err := Marshal(format(t, sampleDocument()))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
