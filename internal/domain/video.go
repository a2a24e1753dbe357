package domain

import (
	"time"

	"github.com/google/uuid"
)

// Video is the primary record for one creative.
type Video struct {
	ID            uuid.UUID
	Title         string
	ChannelName   string
	PublishedYear *int
	YoutubeID     string
	CreatedAt     time.Time
}

// Summary holds the one-line description of a video. At most one per video.
type Summary struct {
	ID          uuid.UUID
	VideoID     uuid.UUID
	SummaryText string
	CreatedAt   time.Time
}

// PerceivedValues is the facet triple used for filtering. Each column is
// independently nullable; NULL means the facet was judged not applicable,
// which is distinct from the facet never having been recorded.
type PerceivedValues struct {
	ID            uuid.UUID
	VideoID       uuid.UUID
	ValueFocus    *string
	VisualSubject *string
	EmotionalTone *string
	CreatedAt     time.Time
}

// StructureDetail elaborates on the facet triple and carries the
// appeal-method pair. At most one per video.
type StructureDetail struct {
	ID            uuid.UUID
	VideoID       uuid.UUID
	ValueDetail   string
	SubjectDetail string
	ToneDetail    string
	AppealMethod  string
	AppealDetail  string
	CreatedAt     time.Time
}

// Note is an append-only observation on a video. Points holds the raw
// stored bullet value (jsonb bytes, a string array, or a legacy plain
// string); the assembler normalizes it for display.
type Note struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	NoteText  string
	Points    any
	CreatedAt time.Time
}

// VideoListRow is one row of the listing query before assembly. The three
// 1:1 relations arrive as raw nested projections: a JSON object, a
// one-element JSON array, or nil when the relation row is absent.
type VideoListRow struct {
	ID            uuid.UUID
	Title         string
	ChannelName   string
	PublishedYear *int
	YoutubeID     string
	CreatedAt     time.Time

	Summary         any
	PerceivedValues any
	StructureDetail any
}

// NoteRecord is one assembled note ready for display.
type NoteRecord struct {
	NoteText  string
	Points    []string
	CreatedAt time.Time
}

// VideoRecord is the flat assembled view of one creative. Pointer fields
// keep the null/absent distinction; default-text substitution belongs to
// the presentation layer.
type VideoRecord struct {
	ID            uuid.UUID
	Title         string
	ChannelName   string
	PublishedYear *int
	YoutubeID     string
	CreatedAt     time.Time

	SummaryText *string

	ValueFocus    *string
	VisualSubject *string
	EmotionalTone *string

	ValueDetail   *string
	SubjectDetail *string
	ToneDetail    *string
	AppealMethod  *string
	AppealDetail  *string

	Notes []NoteRecord
}
