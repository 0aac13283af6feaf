package service

import (
	"context"

	"billing/internal/domain/entity"
)

// ReportExporter publishes daily revenue summaries outside the database.
type ReportExporter interface {
	ExportRevenueSummary(ctx context.Context, summary *entity.RevenueSummary) error
}
