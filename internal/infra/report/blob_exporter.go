// Package report exports daily revenue summaries to object storage.
package report

import (
	"context"
	"encoding/json"
	"log/slog"

	"billing/config"
	"billing/internal/domain/entity"
	"billing/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const keyPrefix = "revenue/"

// Params holds the dependencies of the report exporter
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobExporter struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewReportExporter opens the configured bucket (gs://, file://, mem://).
// Without a bucket URL reports are not exported.
func NewReportExporter(params Params) (service.ReportExporter, error) {
	if params.Config.Reports == nil || params.Config.Reports.BucketURL == "" {
		return &noopExporter{logger: params.Logger}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Reports.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open report bucket %s", params.Config.Reports.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newBlobExporter(bucket, params.Logger), nil
}

func newBlobExporter(bucket *blob.Bucket, logger *slog.Logger) *blobExporter {
	return &blobExporter{bucket: bucket, logger: logger}
}

// ObjectKey is the bucket key of the summary for the given day.
func ObjectKey(summary *entity.RevenueSummary) string {
	return keyPrefix + summary.Date.Format("2006-01-02") + ".json"
}

// ExportRevenueSummary writes the summary as JSON, replacing any earlier export of the same day.
func (e *blobExporter) ExportRevenueSummary(ctx context.Context, summary *entity.RevenueSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	key := ObjectKey(summary)
	if err := e.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	e.logger.InfoContext(ctx, "Revenue summary exported", slog.String("key", key))

	return nil
}

type noopExporter struct {
	logger *slog.Logger
}

func (e *noopExporter) ExportRevenueSummary(ctx context.Context, summary *entity.RevenueSummary) error {
	e.logger.DebugContext(ctx, "Report bucket not configured, skipping export",
		slog.Time("date", summary.Date),
	)

	return nil
}
