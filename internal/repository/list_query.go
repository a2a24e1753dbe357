package repository

import (
	"fmt"
	"strings"

	"github.com/creativeshelf/creativeshelf/internal/domain"
)

// listLimit caps every listing query.
const listLimit = 50

// listProjection selects the video columns plus nested jsonb projections
// for the three 1:1 relations. The perceived_values projection comes from
// the join row and is SQL NULL when the join misses.
const listProjection = `SELECT
	v.id, v.title, v.channel_name, v.published_year, v.youtube_id, v.created_at,
	(SELECT to_jsonb(s) FROM summaries s WHERE s.video_id = v.id) AS summary,
	to_jsonb(pv) AS perceived_values,
	(SELECT to_jsonb(d) FROM structure_details d WHERE d.video_id = v.id) AS structure_detail
FROM videos v`

// buildListQuery constructs the filtered listing SQL. With no active
// filter the facet relation joins optionally, so videos without a facet
// row still appear. With at least one active filter the join becomes
// required; otherwise a missed join would report the facet columns as
// NULL and an optional join would silently drop active predicates.
func buildListQuery(filter domain.FacetFilter) (string, []any) {
	var b strings.Builder
	b.WriteString(listProjection)

	if filter.Active() {
		b.WriteString(" JOIN perceived_values pv ON pv.video_id = v.id")
	} else {
		b.WriteString(" LEFT JOIN perceived_values pv ON pv.video_id = v.id")
	}

	var (
		conds []string
		args  []any
	)
	appendFacetPredicate(&conds, &args, "pv.value_focus", filter.ValueFocus)
	appendFacetPredicate(&conds, &args, "pv.visual_subject", filter.VisualSubject)
	appendFacetPredicate(&conds, &args, "pv.emotional_tone", filter.EmotionalTone)
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	fmt.Fprintf(&b, " ORDER BY v.created_at DESC LIMIT %d", listLimit)
	return b.String(), args
}

// appendFacetPredicate adds the predicate for one facet selection: the
// null sentinel becomes an IS NULL test, any other value an exact,
// case-sensitive equality.
func appendFacetPredicate(conds *[]string, args *[]any, column string, selection *string) {
	if selection == nil {
		return
	}
	if *selection == domain.FacetNull {
		*conds = append(*conds, column+" IS NULL")
		return
	}
	*args = append(*args, *selection)
	*conds = append(*conds, fmt.Sprintf("%s = $%d", column, len(*args)))
}
