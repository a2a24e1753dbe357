// Package export writes the filtered library listing to an xlsx workbook
// for offline review.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creativeshelf/creativeshelf/internal/domain"
	"github.com/creativeshelf/creativeshelf/internal/library"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const sheetName = "Creatives"

var headerRow = []string{
	"Title", "Channel", "Year", "YouTube ID", "Added",
	"Summary", "Value Focus", "Visual Subject", "Emotional Tone",
	"Appeal Method", "Notes",
}

type Service struct {
	library   *library.Service
	log       *zap.Logger
	exportDir string
	now       func() time.Time
}

func NewService(librarySvc *library.Service, log *zap.Logger, exportDir string) *Service {
	return &Service{
		library:   librarySvc,
		log:       log,
		exportDir: filepath.Clean(exportDir),
		now:       time.Now,
	}
}

// ExportListing runs the filtered listing and writes one workbook row per
// assembled record. Returns the written file path.
func (s *Service) ExportListing(ctx context.Context, filter domain.FacetFilter) (string, error) {
	result, err := s.library.Browse(ctx, filter)
	if err != nil {
		return "", err
	}

	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName(file.GetSheetName(0), sheetName)

	if err := writeRow(file, 1, headerRow); err != nil {
		return "", err
	}
	for i, record := range result.Records {
		if err := writeRow(file, i+2, recordRow(record)); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.exportDir, fmt.Sprintf("creatives_%s.xlsx", s.now().Format("20060102_150405")))
	if err := file.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}

	s.log.Info("exported listing",
		zap.String("path", path),
		zap.Int("records", len(result.Records)))
	return path, nil
}

func writeRow(file *excelize.File, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := file.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func recordRow(record domain.VideoRecord) []string {
	year := ""
	if record.PublishedYear != nil {
		year = fmt.Sprintf("%d", *record.PublishedYear)
	}

	noteLines := make([]string, 0, len(record.Notes))
	for _, note := range record.Notes {
		noteLines = append(noteLines, note.NoteText)
	}

	return []string{
		record.Title,
		record.ChannelName,
		year,
		record.YoutubeID,
		record.CreatedAt.Format("2006-01-02"),
		optional(record.SummaryText),
		optional(record.ValueFocus),
		optional(record.VisualSubject),
		optional(record.EmotionalTone),
		optional(record.AppealMethod),
		strings.Join(noteLines, "; "),
	}
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
