package report

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"billing/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobExporter_ExportRevenueSummary(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	exporter := newBlobExporter(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))
	summary := &entity.RevenueSummary{
		Date: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		RevenueFigures: entity.RevenueFigures{
			TotalRevenue: decimal.NewFromInt(1200),
			OrderCount:   4,
		},
	}

	require.NoError(t, exporter.ExportRevenueSummary(ctx, summary))
	// A second export of the same day replaces the object.
	summary.OrderCount = 5
	require.NoError(t, exporter.ExportRevenueSummary(ctx, summary))

	raw, err := bucket.ReadAll(ctx, "revenue/2024-03-09.json")
	require.NoError(t, err)

	var stored entity.RevenueSummary
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, int64(5), stored.OrderCount)
	assert.True(t, decimal.NewFromInt(1200).Equal(stored.TotalRevenue))
}
