package usecase

import (
	"context"
	"errors"
	"testing"

	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/knowledge"
	"hardware-ai-orchestrator/internal/model"
	"hardware-ai-orchestrator/internal/query"
)

func TestAnalyzeSpecLookup(t *testing.T) {
	uc := newTestUseCase(nil)

	got, err := uc.Analyze(context.Background(), query.AnalyzeInput{
		Text:      "What is the maximum junction temperature of a 2N3904?",
		Expertise: model.ExpertiseNovice,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got.Complexity.Score >= 0.4 {
		t.Errorf("Score = %v, want < 0.4", got.Complexity.Score)
	}
	if got.Model != "gpt-4o-mini" {
		t.Errorf("Model = %s, want gpt-4o-mini", got.Model)
	}
	if got.Confidence < 0.85 {
		t.Errorf("Confidence = %v, want high for a near-center score", got.Confidence)
	}
	if got.Intent.Category != "thermal_analysis" {
		t.Errorf("Intent = %s, want thermal_analysis", got.Intent.Category)
	}
	if !got.Domain.Defaulted {
		t.Error("Domain should fall back to the default")
	}
}

func TestAnalyzeComplianceHeavy(t *testing.T) {
	uc := newTestUseCase(nil)

	got, err := uc.Analyze(context.Background(), query.AnalyzeInput{
		Text:      "Design automotive buck converter with AEC-Q100 qualification, thermal analysis, EMI optimization, ISO 26262 functional safety requirements",
		Expertise: model.ExpertiseExpert,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got.Complexity.Score < 0.8 {
		t.Errorf("Score = %v, want >= 0.8", got.Complexity.Score)
	}
	if got.Model != "claude-sonnet-4" {
		t.Errorf("Model = %s, want claude-sonnet-4", got.Model)
	}
	if got.Confidence < 0.9 {
		t.Errorf("Confidence = %v, want >= 0.9", got.Confidence)
	}
	if got.Intent.Category != "compliance_checking" {
		t.Errorf("Intent = %s, want compliance_checking", got.Intent.Category)
	}
	if got.Domain.Category != "automotive" {
		t.Errorf("Domain = %s, want automotive", got.Domain.Category)
	}
	if len(got.Complexity.Rationale) == 0 {
		t.Error("want rationale lines for the saturated signals")
	}
}

func TestAnalyzeComparison(t *testing.T) {
	uc := newTestUseCase(nil)

	got, err := uc.Analyze(context.Background(), query.AnalyzeInput{
		Text:      "Compare ARM Cortex-M4 microcontrollers for ultra-low power IoT applications with cost optimization",
		Expertise: model.ExpertiseSenior,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got.Complexity.Score < 0.6 || got.Complexity.Score >= 0.8 {
		t.Errorf("Score = %v, want in [0.6,0.8)", got.Complexity.Score)
	}
	if got.Model != "grok-2" {
		t.Errorf("Model = %s, want grok-2", got.Model)
	}
	if got.Intent.Category != "component_selection" {
		t.Errorf("Intent = %s, want component_selection", got.Intent.Category)
	}
	want := []string{"gpt-4o", "claude-sonnet-4"}
	if len(got.Fallbacks) != 2 || got.Fallbacks[0] != want[0] || got.Fallbacks[1] != want[1] {
		t.Errorf("Fallbacks = %v, want adjacent tiers by proximity %v", got.Fallbacks, want)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	uc := newTestUseCase(nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := uc.Analyze(context.Background(), query.AnalyzeInput{Text: text}); !errors.Is(err, query.ErrEmptyQuery) {
			t.Errorf("Analyze(%q) = %v, want ErrEmptyQuery", text, err)
		}
	}
}

func TestAnalyzeUnrecognizedText(t *testing.T) {
	uc := newTestUseCase(nil)

	got, err := uc.Analyze(context.Background(), query.AnalyzeInput{Text: "stuff happening everywhere nearby"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got.Intent.Category != catalog.IntentGeneralInquiry || !got.Intent.Defaulted {
		t.Errorf("Intent = %+v, want the default intent", got.Intent)
	}
	if got.Domain.Category != catalog.DomainUnspecified || !got.Domain.Defaulted {
		t.Errorf("Domain = %+v, want the default domain", got.Domain)
	}
	// Two defaulted classifiers must push confidence below the formula
	// base for any band.
	if got.Confidence >= 0.75 {
		t.Errorf("Confidence = %v, want penalized below 0.75", got.Confidence)
	}
	if got.Model == "" {
		t.Error("routing must stay total for unrecognized text")
	}
}

func TestAnalyzeInputValidation(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Analyze(context.Background(), query.AnalyzeInput{Text: "x", Expertise: "wizard"})
	if !errors.Is(err, query.ErrInvalidExpertise) {
		t.Errorf("err = %v, want ErrInvalidExpertise", err)
	}

	_, err = uc.Analyze(context.Background(), query.AnalyzeInput{Text: "x", Phase: "ideation"})
	if !errors.Is(err, query.ErrInvalidPhase) {
		t.Errorf("err = %v, want ErrInvalidPhase", err)
	}
}

func TestAnalyzeDeterministicAndBounded(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()

	texts := []string{
		"What is the maximum junction temperature of a 2N3904?",
		"Design automotive buck converter with AEC-Q100 qualification, thermal analysis, EMI optimization, ISO 26262 functional safety requirements",
		"Compare ARM Cortex-M4 microcontrollers for ultra-low power IoT applications with cost optimization",
		"stuff happening everywhere nearby",
		"explain how a boost converter works",
	}
	for _, text := range texts {
		input := query.AnalyzeInput{Text: text, Expertise: model.ExpertiseSenior, Phase: model.PhaseDesign}
		first, err := uc.Analyze(ctx, input)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", text, err)
		}
		if first.Complexity.Score < 0 || first.Complexity.Score > 1 {
			t.Errorf("Score(%q) = %v outside [0,1]", text, first.Complexity.Score)
		}
		if first.Confidence < 0 || first.Confidence > 1 {
			t.Errorf("Confidence(%q) = %v outside [0,1]", text, first.Confidence)
		}
		for i := 0; i < 5; i++ {
			again, err := uc.Analyze(ctx, input)
			if err != nil {
				t.Fatalf("Analyze(%q): %v", text, err)
			}
			if again.Complexity.Score != first.Complexity.Score ||
				again.Model != first.Model ||
				again.Confidence != first.Confidence ||
				again.Intent.Category != first.Intent.Category ||
				again.Domain.Category != first.Domain.Category {
				t.Fatalf("Analyze(%q) not deterministic", text)
			}
		}
	}
}

func TestAnalyzeStandardsMonotonicity(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()

	texts := []string{
		"explain how a boost converter works",
		"Compare ARM Cortex-M4 microcontrollers for ultra-low power IoT applications with cost optimization",
		"thermal analysis of a 5V regulator",
	}
	for _, text := range texts {
		base, err := uc.Analyze(ctx, query.AnalyzeInput{Text: text})
		if err != nil {
			t.Fatalf("Analyze(%q): %v", text, err)
		}
		withStd, err := uc.Analyze(ctx, query.AnalyzeInput{Text: text + " per ISO 26262"})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if withStd.Complexity.Score < base.Complexity.Score {
			t.Errorf("adding a standards mention lowered the score for %q: %v -> %v",
				text, base.Complexity.Score, withStd.Complexity.Score)
		}
	}
}

func TestAnalyzeKnowledgeEnrichment(t *testing.T) {
	ctx := context.Background()

	t.Run("enrichment attached", func(t *testing.T) {
		uc := newTestUseCase(&mockRetriever{out: knowledge.Context{
			Standards: []knowledge.Standard{{Name: "AEC-Q100"}},
		}})
		got, err := uc.Analyze(ctx, query.AnalyzeInput{Text: "AEC-Q100 qualification plan"})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if len(got.Knowledge.Standards) != 1 {
			t.Errorf("Knowledge = %+v, want the retriever output", got.Knowledge)
		}
	})

	t.Run("retrieval failure does not fail analysis", func(t *testing.T) {
		uc := newTestUseCase(&mockRetriever{err: errors.New("db down")})
		got, err := uc.Analyze(ctx, query.AnalyzeInput{Text: "AEC-Q100 qualification plan"})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if !got.Knowledge.Empty() {
			t.Errorf("Knowledge = %+v, want empty on retrieval failure", got.Knowledge)
		}
	})
}

func TestSubmitFeedbackAndAccuracy(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()

	if _, err := uc.SubmitFeedback(ctx, query.FeedbackInput{Model: "  "}); !errors.Is(err, query.ErrInvalidFeedback) {
		t.Errorf("err = %v, want ErrInvalidFeedback", err)
	}

	receipt, err := uc.SubmitFeedback(ctx, query.FeedbackInput{Model: "grok-2", Correct: true})
	if err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}
	if receipt.ID == "" {
		t.Error("receipt must carry the stored feedback ID")
	}

	report := uc.Accuracy(ctx)
	if report.Total != 1 || report.Accuracy != 1.0 {
		t.Errorf("Accuracy report = %+v, want one correct entry", report)
	}
}

func TestStatus(t *testing.T) {
	uc := newTestUseCase(nil)

	got := uc.Status(context.Background())
	if got.Status != "operational" {
		t.Errorf("Status = %s", got.Status)
	}
	if got.Intents != 12 || got.Domains != 8 || got.Tiers != 4 {
		t.Errorf("catalog shape = %d/%d/%d, want 12/8/4", got.Intents, got.Domains, got.Tiers)
	}
	if got.CatalogVersion == "" {
		t.Error("want the active catalog version")
	}
}
