package ai

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_NormalizeStripsWrappingQuotes verifies that wrapping a
// quote-free message in double quotes never changes the normalized result.
func TestProperty_NormalizeStripsWrappingQuotes(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("quoted input normalizes to trimmed content", prop.ForAll(
		func(s string) bool {
			if strings.ContainsRune(s, '"') {
				return true
			}
			return Normalize(`"`+s+`"`) == strings.TrimSpace(s)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// TestProperty_NormalizeIdempotent verifies that normalizing twice yields
// the same result as normalizing once.
func TestProperty_NormalizeIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Normalize(Normalize(s)) == Normalize(s)", prop.ForAll(
		func(s string) bool {
			once := Normalize(s)
			return Normalize(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("output carries no surrounding whitespace", prop.ForAll(
		func(s string) bool {
			out := Normalize(s)
			return strings.TrimFunc(out, unicode.IsSpace) == out
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
