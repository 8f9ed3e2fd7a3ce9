package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := ParseDate("2024-01-05")
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 5, d.Day())
		assert.Equal(t, "2024-01-05", d.String())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, s := range []string{"", "2024/01/05", "05-01-2024", "2024-13-01", "2024-01-05T10:00:00Z"} {
			_, err := ParseDate(s)
			assert.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"time with clock drops time of day", time.Date(2024, 2, 10, 23, 59, 0, 0, time.UTC), "2024-02-10"},
		{"bytes", []byte("2024-01-20"), "2024-01-20"},
		{"timestamp text", "2024-01-20 08:30:00", "2024-01-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.value))
			assert.Equal(t, tt.want, d.String())
		})
	}

	t.Run("NULL is an error", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(nil))
	})

	t.Run("unsupported type is an error", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(int64(20240101)))
	})
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, 1, 31).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), v)
}

func TestSentimentRecordJSON(t *testing.T) {
	label := "positive"

	t.Run("renders date and numeric score", func(t *testing.T) {
		r := SentimentRecord{
			StockSymbol:     "AAPL",
			PublishedAt:     NewDate(2024, 1, 5),
			SentimentLabel:  &label,
			ConfidenceScore: decimal.NewNullDecimal(decimal.RequireFromString("0.87")),
		}

		data, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"stock_symbol":"AAPL","published_at":"2024-01-05","sentiment_label":"positive","confidence_score":0.87}`,
			string(data))
	})

	t.Run("NULL columns render as null", func(t *testing.T) {
		r := SentimentRecord{StockSymbol: "MSFT", PublishedAt: NewDate(2024, 1, 20)}

		data, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"stock_symbol":"MSFT","published_at":"2024-01-20","sentiment_label":null,"confidence_score":null}`,
			string(data))
	})
}

func TestTrendFilterHasDateRange(t *testing.T) {
	start := NewDate(2024, 1, 1)
	end := NewDate(2024, 1, 31)

	assert.False(t, TrendFilter{}.HasDateRange())
	assert.False(t, TrendFilter{StartDate: &start}.HasDateRange())
	assert.False(t, TrendFilter{EndDate: &end}.HasDateRange())
	assert.True(t, TrendFilter{StartDate: &start, EndDate: &end}.HasDateRange())
}
