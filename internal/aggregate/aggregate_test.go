package aggregate

import (
	"testing"

	"capmatrix/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marker = "org.apache.beam.sdk.testing.ValidatesRunner"

func newAggregator() *Aggregator {
	return New(Options{MarkerCategory: marker}, nil)
}

func document(engines ...domain.EngineResults) *domain.TestResultsDocument {
	return &domain.TestResultsDocument{Engines: engines}
}

func engine(key string, cases ...domain.TestCase) domain.EngineResults {
	return domain.EngineResults{Key: key, TestCases: cases}
}

func passed(name string, categories ...string) domain.TestCase {
	return domain.TestCase{Name: name, Status: domain.StatusPassed, Categories: categories}
}

func failed(name string, categories ...string) domain.TestCase {
	return domain.TestCase{Name: name, Status: "FAILED", Categories: categories}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		category string
		expected string
	}{
		{category: "a.b.Cat1", expected: "Cat1"},
		{category: "org.apache.beam.sdk.testing.UsesTimersInParDo", expected: "UsesTimersInParDo"},
		{category: "NoSeparator", expected: "NoSeparator"},
		{category: "trailing.", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.category))
		})
	}
}

func TestAggregate_SingleEnginePassing(t *testing.T) {
	index := newAggregator().Aggregate(document(
		engine("flink", passed("testA", "a.b.Cat1")),
	))

	require.Equal(t, 1, index.Len())
	entry, ok := index.Get("a.b.Cat1")
	require.True(t, ok)
	assert.Equal(t, "Cat1", entry.Name)
	require.Len(t, entry.Values, 1)

	cell := entry.Values[0]
	assert.Equal(t, "flink", cell.Class)
	assert.Equal(t, domain.SupportYes, cell.Level)
	assert.Equal(t, domain.DetailFullySupported, cell.Detail)
	assert.Empty(t, cell.Failed)
	assert.Equal(t, []domain.TestOutcome{{Name: "testA", Status: "PASSED"}}, cell.Passed)
}

func TestAggregate_BackfillsMissingEngine(t *testing.T) {
	index := newAggregator().Aggregate(document(
		engine("flink", passed("testA", "a.b.Cat1")),
		engine("spark"),
	))

	entry, ok := index.Get("a.b.Cat1")
	require.True(t, ok)
	require.Len(t, entry.Values, 2)

	assert.Equal(t, domain.SupportYes, entry.Values[0].Level)

	spark := entry.Values[1]
	assert.Equal(t, "spark", spark.Class)
	assert.Equal(t, domain.SupportNotSupported, spark.Level)
	assert.Empty(t, spark.Detail)
	assert.Nil(t, spark.Passed)
	assert.Equal(t, []domain.TestOutcome{{Name: "testA", Status: ""}}, spark.Failed)
}

func TestAggregate_EmptyCategoriesContributeNothing(t *testing.T) {
	index := newAggregator().Aggregate(document(
		engine("flink", passed("testA"), failed("testB")),
	))

	assert.Equal(t, 0, index.Len())
}

func TestAggregate_MarkerCategoryIsNotARow(t *testing.T) {
	index := newAggregator().Aggregate(document(
		engine("flink",
			passed("testA", marker, "a.b.Cat1"),
			passed("testB", marker),
		),
	))

	assert.Equal(t, []string{"a.b.Cat1"}, index.Keys())
}

func TestAggregate_SupportLevels(t *testing.T) {
	tests := []struct {
		name           string
		cases          []domain.TestCase
		expectedLevel  domain.SupportLevel
		expectedDetail string
	}{
		{
			name:           "all passed",
			cases:          []domain.TestCase{passed("t1", "c.Cat"), passed("t2", "c.Cat")},
			expectedLevel:  domain.SupportYes,
			expectedDetail: domain.DetailFullySupported,
		},
		{
			name:           "mixed",
			cases:          []domain.TestCase{failed("t1", "c.Cat"), passed("t2", "c.Cat")},
			expectedLevel:  domain.SupportPartially,
			expectedDetail: domain.DetailBatchSupported,
		},
		{
			name:           "only failures stay unlabeled",
			cases:          []domain.TestCase{failed("t1", "c.Cat"), failed("t2", "c.Cat")},
			expectedLevel:  "",
			expectedDetail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := newAggregator().Aggregate(document(engine("flink", tt.cases...)))

			entry, ok := index.Get("c.Cat")
			require.True(t, ok)
			require.Len(t, entry.Values, 1)
			assert.Equal(t, tt.expectedLevel, entry.Values[0].Level)
			assert.Equal(t, tt.expectedDetail, entry.Values[0].Detail)
		})
	}
}

func TestAggregate_AccumulatesWithinEngine(t *testing.T) {
	index := newAggregator().Aggregate(document(
		engine("flink",
			passed("t1", "c.Cat"),
			failed("t2", "c.Cat", "c.Other"),
			passed("t3", "c.Cat"),
		),
	))

	entry, _ := index.Get("c.Cat")
	require.Len(t, entry.Values, 1)
	assert.Equal(t, []domain.TestOutcome{
		{Name: "t1", Status: "PASSED"},
		{Name: "t3", Status: "PASSED"},
	}, entry.Values[0].Passed)
	assert.Equal(t, []domain.TestOutcome{{Name: "t2", Status: "FAILED"}}, entry.Values[0].Failed)
}

func TestAggregate_BackfillDeduplicatesByName(t *testing.T) {
	index := newAggregator().Aggregate(document(
		engine("flink", passed("shared", "c.Cat"), failed("onlyFlink", "c.Cat")),
		engine("spark", failed("shared", "c.Cat"), passed("onlySpark", "c.Cat")),
		engine("dataflow", passed("other", "c.Elsewhere")),
	))

	entry, _ := index.Get("c.Cat")
	require.Len(t, entry.Values, 3)

	dataflow := entry.Values[2]
	assert.Equal(t, "dataflow", dataflow.Class)
	assert.Equal(t, domain.SupportNotSupported, dataflow.Level)
	assert.Equal(t, []domain.TestOutcome{
		{Name: "shared"},
		{Name: "onlyFlink"},
		{Name: "onlySpark"},
	}, dataflow.Failed)

	other, _ := index.Get("c.Elsewhere")
	require.Len(t, other.Values, 3)
	assert.Equal(t, []string{"dataflow", "flink", "spark"}, classes(other.Values))
}

func TestAggregate_BackfillCopiesAreIndependent(t *testing.T) {
	index := newAggregator().Aggregate(document(
		engine("flink", passed("t1", "c.Cat")),
		engine("spark"),
		engine("dataflow"),
	))

	entry, _ := index.Get("c.Cat")
	require.Len(t, entry.Values, 3)
	entry.Values[1].Failed[0].Name = "mutated"
	assert.Equal(t, "t1", entry.Values[2].Failed[0].Name)
}

func TestAggregate_Ordering(t *testing.T) {
	index := newAggregator().Aggregate(document(
		engine("spark", passed("t1", "c.B"), passed("t2", "c.A")),
		engine("flink", passed("t3", "c.C"), passed("t4", "c.A")),
	))

	assert.Equal(t, []string{"c.B", "c.A", "c.C"}, index.Keys())

	entry, _ := index.Get("c.A")
	assert.Equal(t, []string{"spark", "flink"}, classes(entry.Values))

	entry, _ = index.Get("c.C")
	assert.Equal(t, []string{"flink", "spark"}, classes(entry.Values))
}

func TestAggregate_EveryRowCoversEveryEngine(t *testing.T) {
	doc := document(
		engine("flink", passed("t1", "c.A", "c.B"), failed("t2", "c.C")),
		engine("spark", passed("t3", "c.B"), failed("t4", "c.D", marker)),
		engine("dataflow", passed("t5")),
		engine("samza", failed("t6", "c.A"), passed("t7", "c.A")),
	)

	index := newAggregator().Aggregate(doc)

	assert.Equal(t, 4, index.Len())
	for _, entry := range index.Entries() {
		assert.ElementsMatch(t, doc.EngineKeys(), classes(entry.Values), entry.Category)
	}
}

func TestAggregate_IsDeterministic(t *testing.T) {
	doc := document(
		engine("flink", passed("t1", "c.A", "c.B"), failed("t2", "c.C")),
		engine("spark", failed("t1", "c.B")),
	)

	first := newAggregator().Aggregate(doc)
	second := newAggregator().Aggregate(doc)

	assert.Equal(t, first.Keys(), second.Keys())
	assert.Equal(t, first.Entries(), second.Entries())
}

func classes(values []domain.ClassValue) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.Class)
	}
	return out
}
