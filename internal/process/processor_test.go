package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleHeader and sampleRows mirror testdata/sample.csv.
func sampleHeader() []string {
	return []string{"name", "brand", "price", "rating"}
}

func sampleRows() []map[string]string {
	return []map[string]string{
		{"name": "iphone 15 pro", "brand": "apple", "price": "999", "rating": "4.9"},
		{"name": "galaxy s23 ultra", "brand": "samsung", "price": "1199", "rating": "4.8"},
		{"name": "redmi note 12", "brand": "xiaomi", "price": "199", "rating": "4.6"},
		{"name": "poco x5 pro", "brand": "xiaomi", "price": "299", "rating": "4.4"},
		{"name": "pixel 8 pro", "brand": "google", "price": "899", "rating": "4.8"},
		{"name": "oneplus 11", "brand": "oneplus", "price": "699", "rating": "4.6"},
	}
}

func columnValues(rows []map[string]string, column string) []string {
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row[column])
	}
	return values
}

func TestProcessorRun_NoOperations(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	result, err := processor.Run(Options{})
	require.NoError(t, err)
	require.Nil(t, result.Scalar)
	assert.Equal(t, sampleRows(), result.Rows)
}

func TestProcessorRun_Filter(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	result, err := processor.Run(Options{Where: "price>500"})
	require.NoError(t, err)
	require.Nil(t, result.Scalar)
	assert.Equal(t,
		[]string{"iphone 15 pro", "galaxy s23 ultra", "pixel 8 pro", "oneplus 11"},
		columnValues(result.Rows, "name"))
}

func TestProcessorRun_Aggregate(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	result, err := processor.Run(Options{Aggregate: "price=avg"})
	require.NoError(t, err)
	require.NotNil(t, result.Scalar)
	assert.Equal(t, "price", result.Scalar.Column)
	assert.Equal(t, "avg", result.Scalar.Function)
	assert.Equal(t, "avg(price)", result.Scalar.Label())
	assert.InDelta(t, 699.0, result.Scalar.Value, 1e-9)
}

func TestProcessorRun_FilterThenAggregate(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	result, err := processor.Run(Options{Where: "price>500", Aggregate: "price=avg"})
	require.NoError(t, err)
	require.NotNil(t, result.Scalar)
	// (999+1199+899+699)/4
	assert.InDelta(t, 949.0, result.Scalar.Value, 1e-9)
}

func TestProcessorRun_FilterThenSort(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	result, err := processor.Run(Options{Where: "brand=xiaomi", OrderBy: "price=desc"})
	require.NoError(t, err)
	require.Nil(t, result.Scalar)
	assert.Equal(t, []string{"poco x5 pro", "redmi note 12"}, columnValues(result.Rows, "name"))
}

func TestProcessorRun_MatchExpression(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	result, err := processor.Run(Options{Match: `brand == "apple" or brand == "google"`})
	require.NoError(t, err)
	require.Nil(t, result.Scalar)
	assert.Equal(t, []string{"iphone 15 pro", "pixel 8 pro"}, columnValues(result.Rows, "name"))
}

func TestProcessorRun_WhereThenMatch(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	result, err := processor.Run(Options{Where: "price>500", Match: `brand != "apple"`})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"galaxy s23 ultra", "pixel 8 pro", "oneplus 11"},
		columnValues(result.Rows, "name"))
}

func TestProcessorRun_AggregateTakesPrecedenceOverSort(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	result, err := processor.Run(Options{Aggregate: "price=max", OrderBy: "price=asc"})
	require.NoError(t, err)
	require.NotNil(t, result.Scalar)
	assert.InDelta(t, 1199.0, result.Scalar.Value, 1e-9)
}

func TestProcessorRun_SortValidatedEvenWhenAggregateWins(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	_, err := processor.Run(Options{Aggregate: "price=max", OrderBy: "price=invalid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sort validation error")
}

func TestProcessorRun_AggregateAfterEmptyFilter(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	_, err := processor.Run(Options{Where: "price>10000", Aggregate: "price=avg"})
	require.Error(t, err)
	assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
	assert.Contains(t, err.Error(), "aggregation validation error")
	assert.Contains(t, err.Error(), "no data")
}

func TestProcessorRun_CountAfterEmptyFilter(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	result, err := processor.Run(Options{Where: "price>10000", Aggregate: "price=count"})
	require.NoError(t, err)
	require.NotNil(t, result.Scalar)
	assert.Zero(t, result.Scalar.Value)
}

func TestProcessorRun_StagePrefixes(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	tests := []struct {
		name       string
		opts       Options
		wantPrefix string
	}{
		{name: "filter stage", opts: Options{Where: "nonexistent>500"}, wantPrefix: "filter validation error"},
		{name: "match stage", opts: Options{Match: "brand =="}, wantPrefix: "match validation error"},
		{name: "aggregation stage", opts: Options{Aggregate: "price=total"}, wantPrefix: "aggregation validation error"},
		{name: "sort stage", opts: Options{OrderBy: "price=invalid"}, wantPrefix: "sort validation error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := processor.Run(tt.opts)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
			assert.Contains(t, err.Error(), tt.wantPrefix)
		})
	}
}

func TestProcessorRun_UnknownFilterColumnListsHeader(t *testing.T) {
	processor := New(sampleHeader(), sampleRows())

	_, err := processor.Run(Options{Where: "nonexistent>500"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name, brand, price, rating")
}
