package library

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/creativeshelf/creativeshelf/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubReadRepo struct {
	rows        []domain.VideoListRow
	notes       map[uuid.UUID][]domain.Note
	samples     []domain.FacetSample
	listErr     error
	sampleErr   error
	gotFilter   domain.FacetFilter
	sampleLimit int
	noteQueries int
}

func (s *stubReadRepo) ListVideos(ctx context.Context, filter domain.FacetFilter) ([]domain.VideoListRow, error) {
	s.gotFilter = filter
	return s.rows, s.listErr
}

func (s *stubReadRepo) GetVideoByYoutubeID(ctx context.Context, youtubeID string) (domain.VideoListRow, error) {
	for _, row := range s.rows {
		if row.YoutubeID == youtubeID {
			return row, nil
		}
	}
	return domain.VideoListRow{}, &domain.NotFoundError{Resource: "video", Key: youtubeID}
}

func (s *stubReadRepo) SampleFacetRows(ctx context.Context, limit int) ([]domain.FacetSample, error) {
	s.sampleLimit = limit
	return s.samples, s.sampleErr
}

func (s *stubReadRepo) ListNotesByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) (map[uuid.UUID][]domain.Note, error) {
	s.noteQueries++
	grouped := map[uuid.UUID][]domain.Note{}
	for _, id := range videoIDs {
		if notes, ok := s.notes[id]; ok {
			grouped[id] = notes
		}
	}
	return grouped, nil
}

func (s *stubReadRepo) UpsertVideo(ctx context.Context, video domain.Video) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not implemented")
}

func (s *stubReadRepo) UpsertSummary(ctx context.Context, videoID uuid.UUID, summaryText string) error {
	return errors.New("not implemented")
}

func (s *stubReadRepo) UpsertPerceivedValues(ctx context.Context, videoID uuid.UUID, pv domain.PerceivedValues) error {
	return errors.New("not implemented")
}

func (s *stubReadRepo) UpsertStructureDetail(ctx context.Context, videoID uuid.UUID, detail domain.StructureDetail) error {
	return errors.New("not implemented")
}

func (s *stubReadRepo) InsertNote(ctx context.Context, videoID uuid.UUID, noteText string, points []string) error {
	return errors.New("not implemented")
}

func TestBrowseAssemblesRecordsAndOptions(t *testing.T) {
	firstID, secondID := uuid.New(), uuid.New()
	repo := &stubReadRepo{
		rows: []domain.VideoListRow{
			{
				ID:              firstID,
				Title:           "Budget breakdown",
				YoutubeID:       "dQw4w9WgXcQ",
				Summary:         json.RawMessage(`{"summary_text":"saving money fast"}`),
				PerceivedValues: json.RawMessage(`{"value_focus":"thrift","visual_subject":null,"emotional_tone":"urgent"}`),
			},
			{
				ID:        secondID,
				Title:     "No facets yet",
				YoutubeID: "abcdefghijk",
			},
		},
		notes: map[uuid.UUID][]domain.Note{
			firstID: {
				{VideoID: firstID, NoteText: "observation", Points: json.RawMessage(`["a"]`), CreatedAt: time.Now()},
			},
		},
		samples: []domain.FacetSample{
			{ValueFocus: strPtr("thrift")},
			{ValueFocus: nil},
		},
	}

	service := NewService(repo, zap.NewNop(), 200)

	result, err := service.Browse(context.Background(), domain.FacetFilter{})
	if err != nil {
		t.Fatalf("browse returned error: %v", err)
	}

	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Records))
	}
	first := result.Records[0]
	if first.SummaryText == nil || *first.SummaryText != "saving money fast" {
		t.Fatalf("unexpected summary: %v", first.SummaryText)
	}
	if len(first.Notes) != 1 || first.Notes[0].NoteText != "observation" {
		t.Fatalf("unexpected notes: %+v", first.Notes)
	}
	if result.Records[1].ValueFocus != nil {
		t.Fatalf("video without facet row must report facets unset")
	}

	if repo.noteQueries != 1 {
		t.Fatalf("expected one batched note query, got %d", repo.noteQueries)
	}
	if repo.sampleLimit != 200 {
		t.Fatalf("expected public sample cap, got %d", repo.sampleLimit)
	}
	if len(result.Options.ValueFocus.Values) != 1 || !result.Options.ValueFocus.HasNull {
		t.Fatalf("unexpected options: %+v", result.Options.ValueFocus)
	}
}

func TestBrowseSurfacesStorageErrors(t *testing.T) {
	storageErr := &domain.StorageError{Op: "list videos", Code: "42P01", Message: "relation does not exist"}
	repo := &stubReadRepo{listErr: storageErr}
	service := NewService(repo, zap.NewNop(), 200)

	_, err := service.Browse(context.Background(), domain.FacetFilter{})

	var got *domain.StorageError
	if !errors.As(err, &got) || got.Code != "42P01" {
		t.Fatalf("expected storage error surfaced unchanged, got %v", err)
	}
}

func TestFacetOptionsUsesCallerLimit(t *testing.T) {
	repo := &stubReadRepo{samples: []domain.FacetSample{{EmotionalTone: strPtr("calm")}}}
	service := NewService(repo, zap.NewNop(), 200)

	opts, err := service.FacetOptions(context.Background(), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.sampleLimit != 1000 {
		t.Fatalf("expected admin cap forwarded, got %d", repo.sampleLimit)
	}
	if len(opts.EmotionalTone.Values) != 1 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestGetByYoutubeIDNotFound(t *testing.T) {
	service := NewService(&stubReadRepo{}, zap.NewNop(), 200)

	_, err := service.GetByYoutubeID(context.Background(), "dQw4w9WgXcQ")

	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
