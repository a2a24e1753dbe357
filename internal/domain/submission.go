package domain

import "github.com/google/uuid"

// Submission is one flat submission payload covering the video and its
// four dependent records. VideoInput is free text: a bare YouTube id or
// any recognized YouTube URL form.
type Submission struct {
	VideoInput    string
	Title         string
	ChannelName   string
	PublishedYear *int

	SummaryText string

	ValueFocus    *string
	VisualSubject *string
	EmotionalTone *string

	ValueDetail   string
	SubjectDetail string
	ToneDetail    string
	AppealMethod  string
	AppealDetail  string

	NoteText string
	// NotePoints accepts either a []string or a raw string (newline
	// separated or a JSON array) and is normalized before insert.
	NotePoints any
}

// SubmissionStatus classifies the outcome of one submission.
type SubmissionStatus string

const (
	SubmissionOK      SubmissionStatus = "success"
	SubmissionPartial SubmissionStatus = "partial"
	SubmissionFatal   SubmissionStatus = "fatal"
)

// StepFailure records one failed dependent-table write.
type StepFailure struct {
	Step string
	Err  error
}

// SubmissionResult is the aggregate outcome of one submission. Failed is
// ordered by step execution order and is non-empty only for
// SubmissionPartial. Err carries the fatal reason for SubmissionFatal.
type SubmissionResult struct {
	Status    SubmissionStatus
	VideoID   uuid.UUID
	YoutubeID string
	Failed    []StepFailure
	Err       error
}
