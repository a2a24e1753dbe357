package domain

// FacetNull is the reserved filter token meaning "this facet is actually
// NULL". It can never collide with a stored value because stored facet
// values are trimmed non-empty user text and this token is namespaced.
const FacetNull = "__null__"

// FacetFilter carries up to three facet selections for one listing call.
// A nil field means no filter on that column; FacetNull selects rows where
// the column is NULL; any other value selects exact, case-sensitive
// matches.
type FacetFilter struct {
	ValueFocus    *string
	VisualSubject *string
	EmotionalTone *string
}

// Active reports whether at least one facet selection is set.
func (f FacetFilter) Active() bool {
	return f.ValueFocus != nil || f.VisualSubject != nil || f.EmotionalTone != nil
}

// FacetSample is one sampled facet row used to derive filter options.
type FacetSample struct {
	ValueFocus    *string
	VisualSubject *string
	EmotionalTone *string
}

// FacetOptions is the selectable value set for one facet column. HasNull
// is true iff the sample contained at least one actual NULL, in which case
// callers may offer FacetNull as an additional choice.
type FacetOptions struct {
	Values  []string
	HasNull bool
}

// FacetOptionSet groups the options for all three facet columns.
type FacetOptionSet struct {
	ValueFocus    FacetOptions
	VisualSubject FacetOptions
	EmotionalTone FacetOptions
}

// BrowseResult is the output of one filter-read request: the assembled
// records plus the option catalog for the selection controls.
type BrowseResult struct {
	Records []VideoRecord
	Options FacetOptionSet
}
