// Package submission persists one creative submission across the primary
// video table and its four dependent tables.
package submission

import (
	"context"
	"strings"

	"github.com/creativeshelf/creativeshelf/internal/domain"
	"github.com/creativeshelf/creativeshelf/internal/library"
	"github.com/creativeshelf/creativeshelf/internal/repository"
	"github.com/creativeshelf/creativeshelf/internal/youtube"

	"go.uber.org/zap"
)

// Step labels, derived from the dependent table each write targets. They
// appear verbatim in partial results and logs.
const (
	StepSummary         = "summary"
	StepPerceivedValue  = "perceived_value"
	StepStructureDetail = "structure_detail"
	StepNote            = "note"
)

// Coordinator validates and persists submissions. The five writes are
// atomic in intent but not in execution: the video upsert is fatal on
// failure, while each dependent write failure is recorded and the
// remaining steps still run.
type Coordinator struct {
	repo repository.LibraryRepository
	log  *zap.Logger
}

func NewCoordinator(repo repository.LibraryRepository, log *zap.Logger) *Coordinator {
	return &Coordinator{repo: repo, log: log}
}

// Submit persists one submission keyed by its external video id.
// Resubmitting the same id reuses the video row, overwrites the three 1:1
// dependents, and appends one more note.
func (c *Coordinator) Submit(ctx context.Context, sub domain.Submission) domain.SubmissionResult {
	youtubeID, err := youtube.ExtractVideoID(sub.VideoInput)
	if err != nil {
		return fatal(err)
	}

	if missing := missingFields(sub); len(missing) > 0 {
		return fatal(&domain.ValidationError{Missing: missing})
	}

	videoID, err := c.repo.UpsertVideo(ctx, domain.Video{
		Title:         sub.Title,
		ChannelName:   sub.ChannelName,
		PublishedYear: sub.PublishedYear,
		YoutubeID:     youtubeID,
	})
	if err != nil {
		return fatal(err)
	}

	steps := []struct {
		label string
		run   func(context.Context) error
	}{
		{StepSummary, func(ctx context.Context) error {
			return c.repo.UpsertSummary(ctx, videoID, sub.SummaryText)
		}},
		{StepPerceivedValue, func(ctx context.Context) error {
			return c.repo.UpsertPerceivedValues(ctx, videoID, domain.PerceivedValues{
				ValueFocus:    sub.ValueFocus,
				VisualSubject: sub.VisualSubject,
				EmotionalTone: sub.EmotionalTone,
			})
		}},
		{StepStructureDetail, func(ctx context.Context) error {
			return c.repo.UpsertStructureDetail(ctx, videoID, domain.StructureDetail{
				ValueDetail:   sub.ValueDetail,
				SubjectDetail: sub.SubjectDetail,
				ToneDetail:    sub.ToneDetail,
				AppealMethod:  sub.AppealMethod,
				AppealDetail:  sub.AppealDetail,
			})
		}},
		{StepNote, func(ctx context.Context) error {
			return c.repo.InsertNote(ctx, videoID, sub.NoteText, parsePointsInput(sub.NotePoints))
		}},
	}

	var failed []domain.StepFailure
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			c.log.Error("dependent write failed",
				zap.String("step", step.label),
				zap.String("video_id", videoID.String()),
				zap.Error(err))
			failed = append(failed, domain.StepFailure{Step: step.label, Err: err})
		}
	}

	result := domain.SubmissionResult{
		Status:    domain.SubmissionOK,
		VideoID:   videoID,
		YoutubeID: youtubeID,
		Failed:    failed,
	}
	if len(failed) > 0 {
		result.Status = domain.SubmissionPartial
	}
	return result
}

// missingFields checks the required submission fields before any write:
// title, summary text, at least one structure-detail field, and note
// text.
func missingFields(sub domain.Submission) []string {
	var missing []string
	if isBlank(sub.Title) {
		missing = append(missing, "title")
	}
	if isBlank(sub.SummaryText) {
		missing = append(missing, "summary_text")
	}
	if isBlank(sub.ValueDetail) && isBlank(sub.SubjectDetail) && isBlank(sub.ToneDetail) &&
		isBlank(sub.AppealMethod) && isBlank(sub.AppealDetail) {
		missing = append(missing, "structure_detail")
	}
	if isBlank(sub.NoteText) {
		missing = append(missing, "note_text")
	}
	return missing
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// parsePointsInput normalizes the submitted bullet input: an array is
// cleaned as-is, a string is tried as a JSON array first and otherwise
// split on newlines.
func parsePointsInput(v any) []string {
	s, ok := v.(string)
	if !ok {
		return library.NormalizePoints(v)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []string{}
	}
	if strings.HasPrefix(trimmed, "[") {
		return library.NormalizePoints(trimmed)
	}
	var points []string
	for _, line := range strings.Split(trimmed, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			points = append(points, line)
		}
	}
	return points
}

func fatal(err error) domain.SubmissionResult {
	return domain.SubmissionResult{Status: domain.SubmissionFatal, Err: err}
}
