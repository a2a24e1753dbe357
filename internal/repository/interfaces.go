package repository

import (
	"context"

	"github.com/creativeshelf/creativeshelf/internal/domain"

	"github.com/google/uuid"
)

// LibraryRepository defines the storage operations for the creative
// library: the filtered listing read path, the facet sampling read path,
// and the per-table writes driven by the submission coordinator.
type LibraryRepository interface {
	// ListVideos runs the filtered, ordered, capped listing query. The
	// returned rows carry raw nested projections for the 1:1 relations.
	ListVideos(ctx context.Context, filter domain.FacetFilter) ([]domain.VideoListRow, error)

	// GetVideoByYoutubeID fetches a single listing row by external id.
	// Returns domain.NotFoundError when no row matches.
	GetVideoByYoutubeID(ctx context.Context, youtubeID string) (domain.VideoListRow, error)

	// SampleFacetRows returns up to limit facet rows, newest first.
	SampleFacetRows(ctx context.Context, limit int) ([]domain.FacetSample, error)

	// ListNotesByVideoIDs fetches notes for a set of videos, ordered by
	// creation time ascending, grouped per video.
	ListNotesByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) (map[uuid.UUID][]domain.Note, error)

	// UpsertVideo inserts the video or, on youtube_id conflict, updates
	// its mutable fields. Returns the internal id either way.
	UpsertVideo(ctx context.Context, video domain.Video) (uuid.UUID, error)

	// UpsertSummary writes the 1:1 summary row, overwriting on video_id
	// conflict.
	UpsertSummary(ctx context.Context, videoID uuid.UUID, summaryText string) error

	// UpsertPerceivedValues writes the 1:1 facet row, overwriting on
	// video_id conflict.
	UpsertPerceivedValues(ctx context.Context, videoID uuid.UUID, pv domain.PerceivedValues) error

	// UpsertStructureDetail writes the 1:1 detail row, overwriting on
	// video_id conflict.
	UpsertStructureDetail(ctx context.Context, videoID uuid.UUID, detail domain.StructureDetail) error

	// InsertNote appends a new note row. Never an upsert: every
	// submission adds one more note.
	InsertNote(ctx context.Context, videoID uuid.UUID, noteText string, points []string) error
}
