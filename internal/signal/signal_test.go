package signal

import (
	"math"
	"reflect"
	"testing"

	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/model"
)

const (
	lookupText     = "What is the maximum junction temperature of a 2N3904?"
	complianceText = "Design automotive buck converter with AEC-Q100 qualification, thermal analysis, EMI optimization, ISO 26262 functional safety requirements"
	comparisonText = "Compare ARM Cortex-M4 microcontrollers for ultra-low power IoT applications with cost optimization"
)

func sigmap(t *testing.T, text string) map[string]float64 {
	t.Helper()
	out := Extract(model.NewQuery(text, "", "", ""), catalog.Default())
	m := make(map[string]float64, len(out))
	for _, s := range out {
		m[s.Name] = s.Value
	}
	return m
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestParse(t *testing.T) {
	d := parse(lookupText)
	want := []string{"what", "is", "the", "maximum", "junction", "temperature", "of", "a", "2n3904"}
	if !reflect.DeepEqual(d.tokens, want) {
		t.Errorf("tokens = %v, want %v", d.tokens, want)
	}

	d = parse("AEC-Q100, ISO 26262 (3.3V).")
	want = []string{"aec-q100", "iso", "26262", "3.3v"}
	if !reflect.DeepEqual(d.tokens, want) {
		t.Errorf("tokens = %v, want %v", d.tokens, want)
	}
}

func TestTokenKinds(t *testing.T) {
	tcs := []struct {
		tok               string
		numeric, partLike bool
	}{
		{"26262", true, false},
		{"3.3", true, false},
		{"2n3904", false, true},
		{"aec-q100", false, true},
		{"100ma", false, true},
		{"thermal", false, false},
		{"ultra-low", false, false},
		{"...", false, false},
	}
	for _, tc := range tcs {
		if got := isNumeric(tc.tok); got != tc.numeric {
			t.Errorf("isNumeric(%q) = %v, want %v", tc.tok, got, tc.numeric)
		}
		if got := isPartLike(tc.tok); got != tc.partLike {
			t.Errorf("isPartLike(%q) = %v, want %v", tc.tok, got, tc.partLike)
		}
	}
}

func TestTechnicalDensity(t *testing.T) {
	tcs := []struct {
		name, text string
		want       float64
	}{
		{"spec lookup", lookupText, 1.0 / 3},
		{"compliance heavy", complianceText, 13.0 / 16},
		{"comparison", comparisonText, 0.5},
		{"no jargon", "please help me with my homework", 0},
		{"empty", "", 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := sigmap(t, tc.text)[catalog.SignalTechnicalDensity]
			if !approx(got, tc.want) {
				t.Errorf("technical_density(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestStandardsMention(t *testing.T) {
	if got := sigmap(t, complianceText)[catalog.SignalStandardsMention]; got != 1 {
		t.Errorf("standards_mention = %v, want 1", got)
	}
	if got := sigmap(t, comparisonText)[catalog.SignalStandardsMention]; got != 0 {
		t.Errorf("standards_mention = %v, want 0", got)
	}
}

func TestConstraintCount(t *testing.T) {
	tcs := []struct {
		name, text string
		want       float64
	}{
		{"one family", lookupText, 0.25},
		{"four families saturate", complianceText, 1.0},
		{"two families", comparisonText, 0.5},
		{"none", "how does a diode work", 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := sigmap(t, tc.text)[catalog.SignalConstraintCount]
			if !approx(got, tc.want) {
				t.Errorf("constraint_count = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDomainSpecificity(t *testing.T) {
	t.Run("max over matched domains", func(t *testing.T) {
		// comparison text matches consumer (0.8) and digital_design (1.1);
		// the heavier one wins even though consumer has more hits.
		got := sigmap(t, comparisonText)[catalog.SignalDomainSpecificity]
		if !approx(got, 1.1/1.5) {
			t.Errorf("domain_specificity = %v, want %v", got, 1.1/1.5)
		}
	})
	t.Run("automotive text", func(t *testing.T) {
		got := sigmap(t, complianceText)[catalog.SignalDomainSpecificity]
		if !approx(got, 1.4/1.5) {
			t.Errorf("domain_specificity = %v, want %v", got, 1.4/1.5)
		}
	})
	t.Run("floor when nothing matches", func(t *testing.T) {
		got := sigmap(t, lookupText)[catalog.SignalDomainSpecificity]
		if !approx(got, 0.25) {
			t.Errorf("domain_specificity = %v, want 0.25", got)
		}
	})
}

func TestComparativeLanguage(t *testing.T) {
	if got := sigmap(t, comparisonText)[catalog.SignalComparative]; got != 1 {
		t.Errorf("comparative_language = %v, want 1", got)
	}
	if got := sigmap(t, complianceText)[catalog.SignalComparative]; got != 0 {
		t.Errorf("comparative_language = %v, want 0", got)
	}
}

func TestParameterSpecificity(t *testing.T) {
	if got := sigmap(t, lookupText)[catalog.SignalSpecificity]; got != 1 {
		t.Errorf("parameter_specificity with part number = %v, want 1", got)
	}
	if got := sigmap(t, "something about power maybe")[catalog.SignalSpecificity]; got != 0 {
		t.Errorf("parameter_specificity without parameters = %v, want 0", got)
	}
}

func TestAnalysisDepth(t *testing.T) {
	if got := sigmap(t, complianceText)[catalog.SignalAnalysisDepth]; got != 1 {
		t.Errorf("analysis_depth with three cues = %v, want 1 (saturated)", got)
	}
	if got := sigmap(t, comparisonText)[catalog.SignalAnalysisDepth]; !approx(got, 0.5) {
		t.Errorf("analysis_depth with one cue = %v, want 0.5", got)
	}
	if got := sigmap(t, lookupText)[catalog.SignalAnalysisDepth]; got != 0 {
		t.Errorf("analysis_depth with no cues = %v, want 0", got)
	}
}

func TestExtractDeterministicAndBounded(t *testing.T) {
	c := catalog.Default()
	texts := []string{lookupText, complianceText, comparisonText, "", "???", "design design design design"}
	for _, text := range texts {
		q := model.NewQuery(text, "", "", "")
		first := Extract(q, c)
		for i := 0; i < 5; i++ {
			again := Extract(q, c)
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("Extract(%q) not deterministic: %v vs %v", text, first, again)
			}
		}
		for _, s := range first {
			if s.Value < 0 || s.Value > 1 {
				t.Errorf("Extract(%q) signal %s = %v outside [0,1]", text, s.Name, s.Value)
			}
		}
	}
}

func TestExtractOrder(t *testing.T) {
	out := Extract(model.NewQuery("x", "", "", ""), catalog.Default())
	want := []string{
		catalog.SignalTechnicalDensity,
		catalog.SignalStandardsMention,
		catalog.SignalConstraintCount,
		catalog.SignalDomainSpecificity,
		catalog.SignalComparative,
		catalog.SignalSpecificity,
		catalog.SignalAnalysisDepth,
	}
	if len(out) != len(want) {
		t.Fatalf("len(Extract) = %d, want %d", len(out), len(want))
	}
	for i, s := range out {
		if s.Name != want[i] {
			t.Errorf("signal[%d] = %s, want %s", i, s.Name, want[i])
		}
	}
}

func TestContextDelta(t *testing.T) {
	adj := catalog.Default().Context

	tcs := []struct {
		name      string
		expertise model.UserExpertise
		phase     model.ProjectPhase
		want      float64
	}{
		{"expert production clamps to cap", model.ExpertiseExpert, model.PhaseProduction, 0.10},
		{"expert alone", model.ExpertiseExpert, "", 0.08},
		{"senior", model.ExpertiseSenior, "", 0.05},
		{"novice", model.ExpertiseNovice, "", -0.08},
		{"novice concept stays within cap", model.ExpertiseNovice, model.PhaseConcept, -0.10},
		{"intermediate design is neutral", model.ExpertiseIntermediate, model.PhaseDesign, 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			q := model.NewQuery("x", tc.expertise, tc.phase, "")
			if got := ContextDelta(q, adj); !approx(got, tc.want) {
				t.Errorf("ContextDelta = %v, want %v", got, tc.want)
			}
		})
	}
}
