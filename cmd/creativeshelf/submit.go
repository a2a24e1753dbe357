package main

import (
	"fmt"

	"github.com/creativeshelf/creativeshelf/internal/domain"
	"github.com/creativeshelf/creativeshelf/internal/submission"

	"github.com/spf13/cobra"
)

var submitFlags struct {
	video   string
	title   string
	channel string
	year    int

	summary string

	valueFocus    string
	visualSubject string
	emotionalTone string

	valueDetail   string
	subjectDetail string
	toneDetail    string
	appealMethod  string
	appealDetail  string

	note   string
	points string
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit one creative with its descriptive records",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		sub := domain.Submission{
			VideoInput:    submitFlags.video,
			Title:         submitFlags.title,
			ChannelName:   submitFlags.channel,
			SummaryText:   submitFlags.summary,
			ValueFocus:    facetValue(submitFlags.valueFocus),
			VisualSubject: facetValue(submitFlags.visualSubject),
			EmotionalTone: facetValue(submitFlags.emotionalTone),
			ValueDetail:   submitFlags.valueDetail,
			SubjectDetail: submitFlags.subjectDetail,
			ToneDetail:    submitFlags.toneDetail,
			AppealMethod:  submitFlags.appealMethod,
			AppealDetail:  submitFlags.appealDetail,
			NoteText:      submitFlags.note,
			NotePoints:    submitFlags.points,
		}
		if submitFlags.year > 0 {
			year := submitFlags.year
			sub.PublishedYear = &year
		}

		coordinator := submission.NewCoordinator(a.repo, logger)
		result := coordinator.Submit(ctx, sub)

		switch result.Status {
		case domain.SubmissionOK:
			fmt.Printf("submitted %s (video %s)\n", result.YoutubeID, result.VideoID)
			return nil
		case domain.SubmissionPartial:
			fmt.Printf("submitted %s with failed steps:\n", result.YoutubeID)
			for _, failure := range result.Failed {
				fmt.Printf("  %s: %v\n", failure.Step, failure.Err)
			}
			return fmt.Errorf("%d step(s) failed", len(result.Failed))
		default:
			return result.Err
		}
	},
}

func init() {
	flags := submitCmd.Flags()
	flags.StringVar(&submitFlags.video, "video", "", "YouTube video id or URL (required)")
	flags.StringVar(&submitFlags.title, "title", "", "video title (required)")
	flags.StringVar(&submitFlags.channel, "channel", "", "channel name")
	flags.IntVar(&submitFlags.year, "year", 0, "publish year")
	flags.StringVar(&submitFlags.summary, "summary", "", "one-line summary (required)")
	flags.StringVar(&submitFlags.valueFocus, "value-focus", "", "value focus facet")
	flags.StringVar(&submitFlags.visualSubject, "visual-subject", "", "visual subject facet")
	flags.StringVar(&submitFlags.emotionalTone, "emotional-tone", "", "emotional tone facet")
	flags.StringVar(&submitFlags.valueDetail, "value-detail", "", "value focus elaboration")
	flags.StringVar(&submitFlags.subjectDetail, "subject-detail", "", "visual subject elaboration")
	flags.StringVar(&submitFlags.toneDetail, "tone-detail", "", "emotional tone elaboration")
	flags.StringVar(&submitFlags.appealMethod, "appeal-method", "", "appeal method")
	flags.StringVar(&submitFlags.appealDetail, "appeal-detail", "", "appeal method elaboration")
	flags.StringVar(&submitFlags.note, "note", "", "observation note text (required)")
	flags.StringVar(&submitFlags.points, "points", "", "bullet points, newline separated or a JSON array")
}

// facetValue maps an empty facet flag to NULL: facets are either given a
// concrete value or stored as truly null.
func facetValue(flag string) *string {
	if flag == "" {
		return nil
	}
	return &flag
}
