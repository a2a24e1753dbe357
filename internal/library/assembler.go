package library

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/creativeshelf/creativeshelf/internal/domain"
)

// Historically-used column names, tried in order. Earlier imports of the
// library stored some fields under different keys; lookups walk these
// lists deterministically and take the first present non-empty value.
var (
	summaryTextKeys = []string{"summary_text", "summary"}
	noteTextKeys    = []string{"note_text", "note"}
	notePointsKeys  = []string{"points", "bullet_points", "key_points"}

	valueDetailKeys   = []string{"value_detail", "perceived_value_detail"}
	subjectDetailKeys = []string{"subject_detail", "visual_subject_detail"}
	toneDetailKeys    = []string{"tone_detail", "emotional_tone_detail"}
	appealMethodKeys  = []string{"appeal_method"}
	appealDetailKeys  = []string{"appeal_detail", "appeal_method_detail"}
)

// AssembleRecord flattens one listing row and its notes into a view
// record. Nested 1:1 relations may arrive as a JSON object, a one-element
// array, or nothing; absence leaves every dependent field unset.
func AssembleRecord(row domain.VideoListRow, notes []domain.Note) domain.VideoRecord {
	record := domain.VideoRecord{
		ID:            row.ID,
		Title:         row.Title,
		ChannelName:   row.ChannelName,
		PublishedYear: row.PublishedYear,
		YoutubeID:     row.YoutubeID,
		CreatedAt:     row.CreatedAt,
	}

	if summary, ok := firstRelation(row.Summary); ok {
		record.SummaryText = firstPresent(summary, summaryTextKeys...)
	}
	if perceived, ok := firstRelation(row.PerceivedValues); ok {
		record.ValueFocus = textField(perceived, "value_focus")
		record.VisualSubject = textField(perceived, "visual_subject")
		record.EmotionalTone = textField(perceived, "emotional_tone")
	}
	if detail, ok := firstRelation(row.StructureDetail); ok {
		record.ValueDetail = firstPresent(detail, valueDetailKeys...)
		record.SubjectDetail = firstPresent(detail, subjectDetailKeys...)
		record.ToneDetail = firstPresent(detail, toneDetailKeys...)
		record.AppealMethod = firstPresent(detail, appealMethodKeys...)
		record.AppealDetail = firstPresent(detail, appealDetailKeys...)
	}

	record.Notes = assembleNotes(notes)
	return record
}

func assembleNotes(notes []domain.Note) []domain.NoteRecord {
	sorted := make([]domain.Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	records := make([]domain.NoteRecord, 0, len(sorted))
	for _, note := range sorted {
		records = append(records, domain.NoteRecord{
			NoteText:  note.NoteText,
			Points:    NormalizePoints(note.Points),
			CreatedAt: note.CreatedAt,
		})
	}
	return records
}

// normalizeRelation coerces a nested relation projection into a list of
// records. Accepts decoded maps and slices as well as raw JSON bytes.
func normalizeRelation(v any) []map[string]any {
	switch value := v.(type) {
	case nil:
		return nil
	case json.RawMessage:
		return decodeRelation(value)
	case []byte:
		return decodeRelation(value)
	case map[string]any:
		return []map[string]any{value}
	case []map[string]any:
		return value
	case []any:
		records := make([]map[string]any, 0, len(value))
		for _, item := range value {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, rec)
			}
		}
		return records
	default:
		return nil
	}
}

func decodeRelation(raw []byte) []map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	if decoded == nil {
		return nil
	}
	return normalizeRelation(decoded)
}

// firstRelation returns the canonical record of a 1:1 relation: the first
// element of the normalized list. The uniqueness constraint guarantees at
// most one.
func firstRelation(v any) (map[string]any, bool) {
	records := normalizeRelation(v)
	if len(records) == 0 {
		return nil, false
	}
	return records[0], true
}

// firstPresent tries the candidate keys in order against the record and
// returns the first present non-empty string value.
func firstPresent(rec map[string]any, keys ...string) *string {
	for _, key := range keys {
		if value := textField(rec, key); value != nil {
			return value
		}
	}
	return nil
}

// textField reads one string field, preserving the null/absent
// distinction: a missing key, JSON null, or empty string all yield nil.
func textField(rec map[string]any, key string) *string {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return nil
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// NormalizePoints coerces a stored bullet-point value into a clean string
// list. Lists are used as-is (trimmed, empties dropped). Strings are
// first tried as a JSON array; anything else non-empty becomes a
// single-element list.
func NormalizePoints(v any) []string {
	switch value := v.(type) {
	case nil:
		return []string{}
	case []string:
		return cleanPoints(value)
	case []any:
		points := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				points = append(points, s)
			}
		}
		return cleanPoints(points)
	case json.RawMessage:
		return normalizePointsString(string(value))
	case []byte:
		return normalizePointsString(string(value))
	case string:
		return normalizePointsString(value)
	default:
		return []string{}
	}
}

func normalizePointsString(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []string{}
	}

	// Parse failures and non-array values keep the original trimmed
	// string as a single bullet.
	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
		if list, ok := parsed.([]any); ok {
			points := make([]string, 0, len(list))
			for _, item := range list {
				if str, ok := item.(string); ok {
					points = append(points, str)
				}
			}
			return cleanPoints(points)
		}
	}
	return cleanPoints([]string{trimmed})
}

func cleanPoints(points []string) []string {
	cleaned := make([]string, 0, len(points))
	for _, p := range points {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
