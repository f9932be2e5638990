package ai

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_ResolveIsTotal verifies that resolution never fails for any
// identifier string: every input yields a usable provider.
func TestProperty_ResolveIsTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("any identifier resolves to a provider", prop.ForAll(
		func(name string) bool {
			provider := Resolve(name)(ProviderConfig{})
			return provider != nil && provider.Name() != ""
		},
		gen.AnyString(),
	))

	properties.Property("unknown identifiers resolve to the default", prop.ForAll(
		func(name string) bool {
			folded := strings.ToLower(strings.TrimSpace(name))
			if _, known := registry[folded]; known {
				return true
			}
			return Resolve(name)(ProviderConfig{}).Name() == DefaultProviderName
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// TestProperty_ResolveCaseInsensitive verifies that case variants of a known
// identifier resolve to the same provider.
func TestProperty_ResolveCaseInsensitive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("case variants resolve identically", prop.ForAll(
		func(base string, upper bool) bool {
			variant := base
			if upper {
				variant = strings.ToUpper(base)
			}
			return Resolve(variant)(ProviderConfig{}).Name() == Resolve(base)(ProviderConfig{}).Name()
		},
		gen.OneConstOf(ProviderNameOpenAI, ProviderNameAnthropic, ProviderNameOllama),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
