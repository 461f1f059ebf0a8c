package routing

import (
	"math"
	"reflect"
	"testing"

	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/classify"
)

func matched(name string) classify.Result {
	return classify.Result{Name: name, Specificity: 0.5}
}

func defaulted(name string) classify.Result {
	return classify.Result{Name: name, Defaulted: true}
}

func TestRouteSelectsTierByScore(t *testing.T) {
	c := catalog.Default()

	tcs := []struct {
		score float64
		want  string
	}{
		{0.0, "gpt-4o-mini"},
		{0.17, "gpt-4o-mini"},
		{0.39, "gpt-4o-mini"},
		{0.4, "gpt-4o"},
		{0.6233, "grok-2"},
		{0.8, "claude-sonnet-4"},
		{1.0, "claude-sonnet-4"},
	}
	for _, tc := range tcs {
		got := Route(tc.score, matched("circuit_analysis"), matched("consumer"), c)
		if got.Tier.ModelID != tc.want {
			t.Errorf("Route(%v) = %s, want %s", tc.score, got.Tier.ModelID, tc.want)
		}
		if got.OutOfRange {
			t.Errorf("Route(%v) flagged out of range", tc.score)
		}
	}
}

func TestRouteTotalOutsideTable(t *testing.T) {
	c := catalog.Default()

	got := Route(1.2, matched("circuit_analysis"), matched("consumer"), c)
	if !got.OutOfRange {
		t.Fatal("score outside the table must be flagged")
	}
	if got.Tier.ModelID != "claude-sonnet-4" {
		t.Errorf("Tier = %s, want the nearest-boundary tier", got.Tier.ModelID)
	}
}

func TestConfidence(t *testing.T) {
	c := catalog.Default()

	t.Run("mid-band score saturates", func(t *testing.T) {
		got := Route(0.5, matched("circuit_analysis"), matched("consumer"), c)
		if got.Confidence != 1.0 {
			t.Errorf("Confidence = %v, want 1.0", got.Confidence)
		}
	})

	t.Run("boundary score is the base", func(t *testing.T) {
		got := Route(0.4, matched("circuit_analysis"), matched("consumer"), c)
		if math.Abs(got.Confidence-0.75) > 1e-9 {
			t.Errorf("Confidence = %v, want 0.75", got.Confidence)
		}
	})

	t.Run("each defaulted classifier costs a penalty", func(t *testing.T) {
		full := Route(0.5, matched("circuit_analysis"), matched("consumer"), c)
		one := Route(0.5, matched("circuit_analysis"), defaulted(catalog.DomainUnspecified), c)
		two := Route(0.5, defaulted(catalog.IntentGeneralInquiry), defaulted(catalog.DomainUnspecified), c)

		if math.Abs(full.Confidence-one.Confidence-0.10) > 1e-9 {
			t.Errorf("one default: %v vs %v, want 0.10 apart", full.Confidence, one.Confidence)
		}
		if math.Abs(full.Confidence-two.Confidence-0.20) > 1e-9 {
			t.Errorf("two defaults: %v vs %v, want 0.20 apart", full.Confidence, two.Confidence)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		got := Route(0.4, defaulted(catalog.IntentGeneralInquiry), defaulted(catalog.DomainUnspecified), c)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Confidence = %v outside [0,1]", got.Confidence)
		}
	})
}

func TestFallbackChain(t *testing.T) {
	c := catalog.Default()

	t.Run("ordered by range proximity, capped at two", func(t *testing.T) {
		got := Route(0.6233, matched("component_selection"), matched("consumer"), c)
		want := []string{"gpt-4o", "claude-sonnet-4"}
		if !reflect.DeepEqual(got.Fallbacks, want) {
			t.Errorf("Fallbacks = %v, want %v", got.Fallbacks, want)
		}
	})

	t.Run("never contains the selected tier", func(t *testing.T) {
		for _, score := range []float64{0.1, 0.45, 0.7, 0.95} {
			got := Route(score, matched("circuit_analysis"), matched("consumer"), c)
			for _, f := range got.Fallbacks {
				if f == got.Tier.ModelID {
					t.Errorf("Route(%v) fallback repeats selected tier %s", score, f)
				}
			}
			if len(got.Fallbacks) > 2 {
				t.Errorf("Route(%v) chain length %d", score, len(got.Fallbacks))
			}
		}
	})
}

func TestPickCandidatePrefersStrengthThenCost(t *testing.T) {
	// Overlapping tiers cannot come from a validated catalog; the picker
	// still resolves them deterministically.
	tiers := []catalog.ModelTier{
		{ModelID: "cheap", MinComplexity: 0, MaxComplexity: 1, CostWeight: 1},
		{ModelID: "strong", MinComplexity: 0, MaxComplexity: 1, CostWeight: 5, Strengths: []string{"thermal_analysis"}},
	}

	if got := pickCandidate(tiers, "thermal_analysis"); got.ModelID != "strong" {
		t.Errorf("pickCandidate = %s, want the strength match", got.ModelID)
	}
	if got := pickCandidate(tiers, "circuit_analysis"); got.ModelID != "cheap" {
		t.Errorf("pickCandidate = %s, want the cheaper tier", got.ModelID)
	}
}
