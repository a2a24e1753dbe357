package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/creativeshelf/creativeshelf/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// libraryRepository implements LibraryRepository on a pgx pool.
type libraryRepository struct {
	pool *pgxpool.Pool
}

// NewLibraryRepository creates the Postgres-backed library repository.
func NewLibraryRepository(pool *pgxpool.Pool) LibraryRepository {
	return &libraryRepository{pool: pool}
}

func (r *libraryRepository) ListVideos(ctx context.Context, filter domain.FacetFilter) ([]domain.VideoListRow, error) {
	sql, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapStorage("list videos", err)
	}
	defer rows.Close()

	result := []domain.VideoListRow{}
	for rows.Next() {
		row, err := scanVideoListRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage("list videos", err)
	}

	return result, nil
}

func (r *libraryRepository) GetVideoByYoutubeID(ctx context.Context, youtubeID string) (domain.VideoListRow, error) {
	sql := listProjection + " LEFT JOIN perceived_values pv ON pv.video_id = v.id WHERE v.youtube_id = $1"

	rows, err := r.pool.Query(ctx, sql, youtubeID)
	if err != nil {
		return domain.VideoListRow{}, wrapStorage("get video", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.VideoListRow{}, wrapStorage("get video", err)
		}
		return domain.VideoListRow{}, &domain.NotFoundError{Resource: "video", Key: youtubeID}
	}
	row, err := scanVideoListRow(rows)
	if err != nil {
		return domain.VideoListRow{}, fmt.Errorf("failed to scan video row: %w", err)
	}
	return row, nil
}

func (r *libraryRepository) SampleFacetRows(ctx context.Context, limit int) ([]domain.FacetSample, error) {
	sql := `SELECT value_focus, visual_subject, emotional_tone
		FROM perceived_values
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, sql, limit)
	if err != nil {
		return nil, wrapStorage("sample facet rows", err)
	}
	defer rows.Close()

	samples := []domain.FacetSample{}
	for rows.Next() {
		var s domain.FacetSample
		if err := rows.Scan(&s.ValueFocus, &s.VisualSubject, &s.EmotionalTone); err != nil {
			return nil, fmt.Errorf("failed to scan facet sample: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage("sample facet rows", err)
	}

	return samples, nil
}

func (r *libraryRepository) ListNotesByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) (map[uuid.UUID][]domain.Note, error) {
	grouped := make(map[uuid.UUID][]domain.Note, len(videoIDs))
	if len(videoIDs) == 0 {
		return grouped, nil
	}

	ids := make([]string, len(videoIDs))
	for i, id := range videoIDs {
		ids[i] = id.String()
	}

	sql := `SELECT id, video_id, note_text, points, created_at
		FROM notes
		WHERE video_id = ANY($1::uuid[])
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, sql, ids)
	if err != nil {
		return nil, wrapStorage("list notes", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			note   domain.Note
			points []byte
		)
		if err := rows.Scan(&note.ID, &note.VideoID, &note.NoteText, &points, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		if points != nil {
			note.Points = json.RawMessage(points)
		}
		grouped[note.VideoID] = append(grouped[note.VideoID], note)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage("list notes", err)
	}

	return grouped, nil
}

func (r *libraryRepository) UpsertVideo(ctx context.Context, video domain.Video) (uuid.UUID, error) {
	sql := `INSERT INTO videos (title, channel_name, published_year, youtube_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (youtube_id) DO UPDATE SET
			title = EXCLUDED.title,
			channel_name = EXCLUDED.channel_name,
			published_year = EXCLUDED.published_year
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, sql, video.Title, video.ChannelName, video.PublishedYear, video.YoutubeID).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapStorage("upsert video", err)
	}
	return id, nil
}

func (r *libraryRepository) UpsertSummary(ctx context.Context, videoID uuid.UUID, summaryText string) error {
	sql := `INSERT INTO summaries (video_id, summary_text)
		VALUES ($1, $2)
		ON CONFLICT (video_id) DO UPDATE SET summary_text = EXCLUDED.summary_text`

	if _, err := r.pool.Exec(ctx, sql, videoID, summaryText); err != nil {
		return wrapStorage("upsert summary", err)
	}
	return nil
}

func (r *libraryRepository) UpsertPerceivedValues(ctx context.Context, videoID uuid.UUID, pv domain.PerceivedValues) error {
	sql := `INSERT INTO perceived_values (video_id, value_focus, visual_subject, emotional_tone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (video_id) DO UPDATE SET
			value_focus = EXCLUDED.value_focus,
			visual_subject = EXCLUDED.visual_subject,
			emotional_tone = EXCLUDED.emotional_tone`

	if _, err := r.pool.Exec(ctx, sql, videoID, pv.ValueFocus, pv.VisualSubject, pv.EmotionalTone); err != nil {
		return wrapStorage("upsert perceived values", err)
	}
	return nil
}

func (r *libraryRepository) UpsertStructureDetail(ctx context.Context, videoID uuid.UUID, detail domain.StructureDetail) error {
	sql := `INSERT INTO structure_details (video_id, value_detail, subject_detail, tone_detail, appeal_method, appeal_detail)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (video_id) DO UPDATE SET
			value_detail = EXCLUDED.value_detail,
			subject_detail = EXCLUDED.subject_detail,
			tone_detail = EXCLUDED.tone_detail,
			appeal_method = EXCLUDED.appeal_method,
			appeal_detail = EXCLUDED.appeal_detail`

	if _, err := r.pool.Exec(ctx, sql, videoID,
		detail.ValueDetail, detail.SubjectDetail, detail.ToneDetail,
		detail.AppealMethod, detail.AppealDetail); err != nil {
		return wrapStorage("upsert structure detail", err)
	}
	return nil
}

func (r *libraryRepository) InsertNote(ctx context.Context, videoID uuid.UUID, noteText string, points []string) error {
	if points == nil {
		points = []string{}
	}
	pointsJSON, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("failed to marshal note points: %w", err)
	}

	sql := `INSERT INTO notes (video_id, note_text, points) VALUES ($1, $2, $3)`
	if _, err := r.pool.Exec(ctx, sql, videoID, noteText, pointsJSON); err != nil {
		return wrapStorage("insert note", err)
	}
	return nil
}

// scanVideoListRow reads one listing row including the raw nested
// relation projections.
func scanVideoListRow(rows pgx.Rows) (domain.VideoListRow, error) {
	var (
		row       domain.VideoListRow
		summary   []byte
		perceived []byte
		detail    []byte
	)
	err := rows.Scan(
		&row.ID, &row.Title, &row.ChannelName, &row.PublishedYear, &row.YoutubeID, &row.CreatedAt,
		&summary, &perceived, &detail,
	)
	if err != nil {
		return domain.VideoListRow{}, err
	}
	if summary != nil {
		row.Summary = json.RawMessage(summary)
	}
	if perceived != nil {
		row.PerceivedValues = json.RawMessage(perceived)
	}
	if detail != nil {
		row.StructureDetail = json.RawMessage(detail)
	}
	return row, nil
}
