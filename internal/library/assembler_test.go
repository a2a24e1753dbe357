package library

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/creativeshelf/creativeshelf/internal/domain"

	"github.com/google/uuid"
)

func TestNormalizePoints(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  []string
	}{
		{"string slice", []string{"a", "b"}, []string{"a", "b"}},
		{"string slice with empties", []string{" a ", "", "  "}, []string{"a"}},
		{"any slice", []any{"a", "b"}, []string{"a", "b"}},
		{"json array string", `["a","b"]`, []string{"a", "b"}},
		{"json array bytes", json.RawMessage(`["a"," b ",""]`), []string{"a", "b"}},
		{"plain text", "plain text", []string{"plain text"}},
		{"json object string", `{"a":1}`, []string{`{"a":1}`}},
		{"nil", nil, []string{}},
		{"empty string", "", []string{}},
		{"whitespace string", "   ", []string{}},
		{"unsupported type", 42, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePoints(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNormalizeRelationShapes(t *testing.T) {
	obj := map[string]any{"summary_text": "x"}

	if got := normalizeRelation(nil); got != nil {
		t.Fatalf("expected nil for absent relation, got %v", got)
	}
	if got := normalizeRelation(obj); len(got) != 1 || got[0]["summary_text"] != "x" {
		t.Fatalf("expected single object coerced to one-element list, got %v", got)
	}
	if got := normalizeRelation([]any{obj, map[string]any{"summary_text": "y"}}); len(got) != 2 {
		t.Fatalf("expected list kept as list, got %v", got)
	}
	if got := normalizeRelation(json.RawMessage(`{"value_focus":"A"}`)); len(got) != 1 {
		t.Fatalf("expected raw object decoded, got %v", got)
	}
	if got := normalizeRelation(json.RawMessage(`[{"value_focus":"A"}]`)); len(got) != 1 {
		t.Fatalf("expected raw one-element array decoded, got %v", got)
	}
	if got := normalizeRelation(json.RawMessage(`null`)); got != nil {
		t.Fatalf("expected JSON null treated as absent, got %v", got)
	}
	if got := normalizeRelation(json.RawMessage(`[]`)); len(got) != 0 {
		t.Fatalf("expected empty array treated as absent, got %v", got)
	}
}

func TestAssembleRecordFlattensNestedRelations(t *testing.T) {
	videoID := uuid.New()
	row := domain.VideoListRow{
		ID:        videoID,
		Title:     "Budget breakdown",
		YoutubeID: "dQw4w9WgXcQ",
		Summary:   json.RawMessage(`{"summary_text":"saving money fast"}`),
		PerceivedValues: json.RawMessage(
			`{"value_focus":"thrift","visual_subject":null,"emotional_tone":"urgent"}`),
		StructureDetail: json.RawMessage(
			`[{"value_detail":"price anchoring","appeal_method":"scarcity"}]`),
	}
	notes := []domain.Note{
		{
			VideoID:   videoID,
			NoteText:  "second",
			Points:    json.RawMessage(`["b"]`),
			CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			VideoID:   videoID,
			NoteText:  "first",
			Points:    "plain point",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	record := AssembleRecord(row, notes)

	if record.SummaryText == nil || *record.SummaryText != "saving money fast" {
		t.Fatalf("unexpected summary: %v", record.SummaryText)
	}
	if record.ValueFocus == nil || *record.ValueFocus != "thrift" {
		t.Fatalf("unexpected value focus: %v", record.ValueFocus)
	}
	if record.VisualSubject != nil {
		t.Fatalf("expected null visual subject to stay unset, got %q", *record.VisualSubject)
	}
	if record.ValueDetail == nil || *record.ValueDetail != "price anchoring" {
		t.Fatalf("unexpected value detail: %v", record.ValueDetail)
	}
	if record.SubjectDetail != nil {
		t.Fatalf("expected absent subject detail to stay unset")
	}
	if record.AppealMethod == nil || *record.AppealMethod != "scarcity" {
		t.Fatalf("unexpected appeal method: %v", record.AppealMethod)
	}

	if len(record.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(record.Notes))
	}
	if record.Notes[0].NoteText != "first" || record.Notes[1].NoteText != "second" {
		t.Fatalf("expected notes sorted by creation time ascending, got %+v", record.Notes)
	}
	if !reflect.DeepEqual(record.Notes[0].Points, []string{"plain point"}) {
		t.Fatalf("unexpected first note points: %v", record.Notes[0].Points)
	}
	if !reflect.DeepEqual(record.Notes[1].Points, []string{"b"}) {
		t.Fatalf("unexpected second note points: %v", record.Notes[1].Points)
	}
}

func TestAssembleRecordAbsentRelationsLeaveFieldsUnset(t *testing.T) {
	row := domain.VideoListRow{
		ID:        uuid.New(),
		Title:     "No dependents yet",
		YoutubeID: "abcdefghijk",
	}

	record := AssembleRecord(row, nil)

	if record.SummaryText != nil {
		t.Fatalf("expected unset summary")
	}
	if record.ValueFocus != nil || record.VisualSubject != nil || record.EmotionalTone != nil {
		t.Fatalf("expected unset facets")
	}
	if record.ValueDetail != nil || record.AppealMethod != nil {
		t.Fatalf("expected unset detail fields")
	}
	if len(record.Notes) != 0 {
		t.Fatalf("expected no notes, got %v", record.Notes)
	}
}

func TestFirstPresentWalksAliasesInOrder(t *testing.T) {
	rec := map[string]any{"summary": "legacy text"}
	if got := firstPresent(rec, summaryTextKeys...); got == nil || *got != "legacy text" {
		t.Fatalf("expected legacy alias value, got %v", got)
	}

	rec = map[string]any{"summary_text": "current", "summary": "legacy"}
	if got := firstPresent(rec, summaryTextKeys...); got == nil || *got != "current" {
		t.Fatalf("expected primary key to win, got %v", got)
	}

	rec = map[string]any{"summary_text": "", "summary": "fallback"}
	if got := firstPresent(rec, summaryTextKeys...); got == nil || *got != "fallback" {
		t.Fatalf("expected empty primary to fall through, got %v", got)
	}
}
