// Package library implements the read side of the creative library: the
// filter option catalog, record assembly, and the browse service.
package library

import (
	"sort"
	"strings"

	"github.com/creativeshelf/creativeshelf/internal/domain"
)

// BuildFacetOptions derives the selectable options for each facet column
// from a bounded sample of facet rows. Per column: the distinct set of
// non-empty trimmed observed values, and whether any sampled row holds an
// actual NULL. Empty and whitespace-only values count toward neither.
func BuildFacetOptions(sample []domain.FacetSample) domain.FacetOptionSet {
	var valueFocus, visualSubject, emotionalTone columnOptions
	for _, row := range sample {
		valueFocus.observe(row.ValueFocus)
		visualSubject.observe(row.VisualSubject)
		emotionalTone.observe(row.EmotionalTone)
	}
	return domain.FacetOptionSet{
		ValueFocus:    valueFocus.finish(),
		VisualSubject: visualSubject.finish(),
		EmotionalTone: emotionalTone.finish(),
	}
}

type columnOptions struct {
	seen    map[string]struct{}
	hasNull bool
}

func (c *columnOptions) observe(value *string) {
	if value == nil {
		c.hasNull = true
		return
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return
	}
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	c.seen[trimmed] = struct{}{}
}

func (c *columnOptions) finish() domain.FacetOptions {
	values := make([]string, 0, len(c.seen))
	for v := range c.seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return domain.FacetOptions{Values: values, HasNull: c.hasNull}
}
