package library

import (
	"reflect"
	"testing"

	"github.com/creativeshelf/creativeshelf/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestBuildFacetOptionsDistinctTrimmedValues(t *testing.T) {
	sample := []domain.FacetSample{
		{ValueFocus: strPtr("A"), VisualSubject: strPtr("person")},
		{ValueFocus: nil, VisualSubject: strPtr(" person ")},
		{ValueFocus: strPtr("A"), VisualSubject: strPtr("product")},
		{ValueFocus: strPtr(""), VisualSubject: strPtr("  ")},
	}

	opts := BuildFacetOptions(sample)

	if !reflect.DeepEqual(opts.ValueFocus.Values, []string{"A"}) {
		t.Fatalf("expected value focus options [A], got %v", opts.ValueFocus.Values)
	}
	if !opts.ValueFocus.HasNull {
		t.Fatalf("expected hasNull for value focus")
	}
	if !reflect.DeepEqual(opts.VisualSubject.Values, []string{"person", "product"}) {
		t.Fatalf("expected deduplicated trimmed subjects, got %v", opts.VisualSubject.Values)
	}
	if opts.VisualSubject.HasNull {
		t.Fatalf("empty strings must not count as null")
	}
}

func TestBuildFacetOptionsEmptySample(t *testing.T) {
	opts := BuildFacetOptions(nil)

	for _, col := range []domain.FacetOptions{opts.ValueFocus, opts.VisualSubject, opts.EmotionalTone} {
		if len(col.Values) != 0 {
			t.Fatalf("expected no options, got %v", col.Values)
		}
		if col.HasNull {
			t.Fatalf("expected hasNull false for empty sample")
		}
	}
}

func TestBuildFacetOptionsNullOnlyColumn(t *testing.T) {
	sample := []domain.FacetSample{
		{EmotionalTone: nil},
		{EmotionalTone: nil},
	}

	opts := BuildFacetOptions(sample)

	if len(opts.EmotionalTone.Values) != 0 {
		t.Fatalf("expected no tone options, got %v", opts.EmotionalTone.Values)
	}
	if !opts.EmotionalTone.HasNull {
		t.Fatalf("expected hasNull true for all-null column")
	}
}
