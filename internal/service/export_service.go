package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
	"github.com/noah-isme/pack-scheduler-api/pkg/export"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

var (
	scheduleHeaders = []string{"Name", "Section", "Title", "Credits", "Instructor", "Meeting", "Details"}
	catalogHeaders  = []string{"Name", "Section", "Title", "Meeting", "Open Seats"}
)

// ExportService renders schedules and the catalog as CSV or PDF.
type ExportService struct {
	exporters map[string]export.Exporter
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService registers the CSV and PDF exporters.
func NewExportService(logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		exporters: map[string]export.Exporter{
			"csv": export.NewCSVExporter(),
			"pdf": export.NewPDFExporter(1, 0.8, 3, 0.8, 1.2, 2.2, 2),
		},
		logger: logger,
		now:    time.Now,
	}
}

// Schedule renders the long rows of a student's schedule.
func (s *ExportService) Schedule(view models.ScheduleView, format string) (*ExportFile, error) {
	table := export.Table{
		Title:   view.Title,
		Headers: scheduleHeaders,
		Rows:    view.Activities,
		Footer:  fmt.Sprintf("Total credits: %d", view.Credits),
	}
	return s.render(table, format, "schedule-"+view.StudentID)
}

// Catalog renders the catalog listing.
func (s *ExportService) Catalog(rows []models.CourseSummary, format string) (*ExportFile, error) {
	table := export.Table{
		Title:   "Course Catalog",
		Headers: catalogHeaders,
		Rows: lo.Map(rows, func(row models.CourseSummary, _ int) []string {
			return []string{row.Name, row.Section, row.Title, row.Meeting, fmt.Sprintf("%d", row.OpenSeats)}
		}),
		Footer: fmt.Sprintf("%d offerings", len(rows)),
	}
	return s.render(table, format, "catalog")
}

func (s *ExportService) render(table export.Table, format, base string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, fmt.Sprintf("unsupported export format %q", format))
	}

	data, err := exporter.Render(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	filename := fmt.Sprintf("%s-%s.%s", base, s.now().UTC().Format("20060102-150405"), exporter.Extension())
	s.logger.Debug("export rendered", zap.String("file", filename), zap.Int("bytes", len(data)))
	return &ExportFile{Filename: filename, ContentType: exporter.ContentType(), Data: data}, nil
}
