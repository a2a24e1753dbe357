package export

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/creativeshelf/creativeshelf/internal/domain"
	"github.com/creativeshelf/creativeshelf/internal/library"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type stubRepo struct {
	rows []domain.VideoListRow
}

func (s *stubRepo) ListVideos(ctx context.Context, filter domain.FacetFilter) ([]domain.VideoListRow, error) {
	return s.rows, nil
}

func (s *stubRepo) GetVideoByYoutubeID(ctx context.Context, youtubeID string) (domain.VideoListRow, error) {
	return domain.VideoListRow{}, &domain.NotFoundError{Resource: "video", Key: youtubeID}
}

func (s *stubRepo) SampleFacetRows(ctx context.Context, limit int) ([]domain.FacetSample, error) {
	return nil, nil
}

func (s *stubRepo) ListNotesByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) (map[uuid.UUID][]domain.Note, error) {
	return map[uuid.UUID][]domain.Note{}, nil
}

func (s *stubRepo) UpsertVideo(ctx context.Context, video domain.Video) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (s *stubRepo) UpsertSummary(ctx context.Context, videoID uuid.UUID, summaryText string) error {
	return nil
}

func (s *stubRepo) UpsertPerceivedValues(ctx context.Context, videoID uuid.UUID, pv domain.PerceivedValues) error {
	return nil
}

func (s *stubRepo) UpsertStructureDetail(ctx context.Context, videoID uuid.UUID, detail domain.StructureDetail) error {
	return nil
}

func (s *stubRepo) InsertNote(ctx context.Context, videoID uuid.UUID, noteText string, points []string) error {
	return nil
}

func TestExportListingWritesWorkbook(t *testing.T) {
	repo := &stubRepo{
		rows: []domain.VideoListRow{
			{
				ID:              uuid.New(),
				Title:           "Budget breakdown",
				ChannelName:     "Thrift Lab",
				YoutubeID:       "dQw4w9WgXcQ",
				Summary:         json.RawMessage(`{"summary_text":"saving money fast"}`),
				PerceivedValues: json.RawMessage(`{"value_focus":"thrift"}`),
			},
		},
	}
	librarySvc := library.NewService(repo, zap.NewNop(), 200)
	dir := t.TempDir()

	service := NewService(librarySvc, zap.NewNop(), dir)
	path, err := service.ExportListing(context.Background(), domain.FacetFilter{})
	if err != nil {
		t.Fatalf("export returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected workbook on disk: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(sheetName)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one record, got %d rows", len(rows))
	}
	if rows[0][0] != "Title" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Budget breakdown" {
		t.Fatalf("unexpected record row: %v", rows[1])
	}
}
