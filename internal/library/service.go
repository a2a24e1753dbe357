package library

import (
	"context"
	"fmt"

	"github.com/creativeshelf/creativeshelf/internal/domain"
	"github.com/creativeshelf/creativeshelf/internal/relationloader"
	"github.com/creativeshelf/creativeshelf/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the read side of the library: filtered listings with
// assembled records plus the facet option catalog.
type Service struct {
	repo              repository.LibraryRepository
	log               *zap.Logger
	publicSampleLimit int
}

func NewService(repo repository.LibraryRepository, log *zap.Logger, publicSampleLimit int) *Service {
	return &Service{
		repo:              repo,
		log:               log,
		publicSampleLimit: publicSampleLimit,
	}
}

// Browse runs one filter-read request: the filtered listing, batched note
// loading, record assembly, and the option catalog from the public-capped
// sample. Storage rejections surface as-is; no fallback data.
func (s *Service) Browse(ctx context.Context, filter domain.FacetFilter) (domain.BrowseResult, error) {
	rows, err := s.repo.ListVideos(ctx, filter)
	if err != nil {
		return domain.BrowseResult{}, err
	}

	records, err := s.assembleRows(ctx, rows)
	if err != nil {
		return domain.BrowseResult{}, err
	}

	options, err := s.FacetOptions(ctx, s.publicSampleLimit)
	if err != nil {
		return domain.BrowseResult{}, err
	}

	s.log.Debug("browse completed",
		zap.Int("records", len(records)),
		zap.Bool("filtered", filter.Active()))

	return domain.BrowseResult{Records: records, Options: options}, nil
}

// FacetOptions derives the option catalog from a bounded facet sample.
// The limit differs between the public and administrative call sites.
func (s *Service) FacetOptions(ctx context.Context, sampleLimit int) (domain.FacetOptionSet, error) {
	sample, err := s.repo.SampleFacetRows(ctx, sampleLimit)
	if err != nil {
		return domain.FacetOptionSet{}, err
	}
	return BuildFacetOptions(sample), nil
}

// GetByYoutubeID assembles the single record for one external id.
// Returns domain.NotFoundError when the video does not exist.
func (s *Service) GetByYoutubeID(ctx context.Context, youtubeID string) (domain.VideoRecord, error) {
	row, err := s.repo.GetVideoByYoutubeID(ctx, youtubeID)
	if err != nil {
		return domain.VideoRecord{}, err
	}

	records, err := s.assembleRows(ctx, []domain.VideoListRow{row})
	if err != nil {
		return domain.VideoRecord{}, err
	}
	return records[0], nil
}

func (s *Service) assembleRows(ctx context.Context, rows []domain.VideoListRow) ([]domain.VideoRecord, error) {
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	notes, err := relationloader.NewNoteLoader(s.repo).NotesFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	records := make([]domain.VideoRecord, len(rows))
	for i, row := range rows {
		records[i] = AssembleRecord(row, notes[row.ID])
	}
	return records, nil
}
