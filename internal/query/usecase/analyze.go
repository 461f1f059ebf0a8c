package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"hardware-ai-orchestrator/internal/classify"
	"hardware-ai-orchestrator/internal/complexity"
	"hardware-ai-orchestrator/internal/knowledge"
	"hardware-ai-orchestrator/internal/model"
	"hardware-ai-orchestrator/internal/query"
	"hardware-ai-orchestrator/internal/routing"
	"hardware-ai-orchestrator/internal/signal"
)

// Analyze classifies the query, scores its complexity and selects a
// model tier. Both classifiers run concurrently with signal extraction
// and scoring; every stage reads the same catalog snapshot, so a hot
// reload mid-request cannot produce a mixed decision.
func (uc *implUseCase) Analyze(ctx context.Context, input query.AnalyzeInput) (query.RoutingDecision, error) {
	start := time.Now()

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return query.RoutingDecision{}, query.ErrEmptyQuery
	}
	if input.Expertise != "" && !input.Expertise.Valid() {
		return query.RoutingDecision{}, query.ErrInvalidExpertise
	}
	if !input.Phase.Valid() {
		return query.RoutingDecision{}, query.ErrInvalidPhase
	}

	q := model.NewQuery(text, input.Expertise, input.Phase, input.DeclaredDomain)
	cat := uc.store.Current()

	var intentRes, domainRes classify.Result
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		intentRes = classify.Intent(text, cat)
	}()
	go func() {
		defer wg.Done()
		domainRes = classify.Domain(text, cat)
	}()

	signals := signal.Extract(q, cat)
	assessment := complexity.Score(signals, signal.ContextDelta(q, cat.Context), cat)
	wg.Wait()

	if q.DeclaredDomain != "" && q.DeclaredDomain != domainRes.Name {
		uc.l.Debugf(ctx, "Analyze: caller declared domain %q, text reads as %q", q.DeclaredDomain, domainRes.Name)
	}

	decision := routing.Route(assessment.Score, intentRes, domainRes, cat)
	if decision.OutOfRange {
		uc.l.Warnf(ctx, "Analyze: score %.3f matched no tier, using nearest %s", assessment.Score, decision.Tier.ModelID)
	}

	enrichment := knowledge.Context{}
	if uc.retriever != nil {
		got, err := uc.retriever.Retrieve(ctx, intentRes.Name, domainRes.Name, text)
		if err != nil {
			uc.l.Warnf(ctx, "Analyze: knowledge retrieval failed: %v", err)
		} else {
			enrichment = got
		}
	}

	elapsed := time.Since(start)
	out := query.RoutingDecision{
		Intent:         classification(intentRes),
		Domain:         classification(domainRes),
		Complexity:     assessment,
		Model:          decision.Tier.ModelID,
		Confidence:     decision.Confidence,
		Fallbacks:      decision.Fallbacks,
		OutOfRange:     decision.OutOfRange,
		Knowledge:      enrichment,
		CatalogVersion: cat.Version,
		AnalyzedAt:     start.UTC(),
		Elapsed:        elapsed,
	}

	if uc.exporter != nil {
		uc.exporter.RecordDecision(out.Model, out.Intent.Category, out.Domain.Category,
			assessment.Score, out.Confidence, out.OutOfRange, elapsed)
	}
	uc.l.Infof(ctx, "Analyze: intent=%s domain=%s score=%.3f model=%s confidence=%.2f",
		out.Intent.Category, out.Domain.Category, assessment.Score, out.Model, out.Confidence)

	return out, nil
}

func classification(r classify.Result) query.Classification {
	return query.Classification{
		Category:        r.Name,
		Specificity:     r.Specificity,
		MatchedPatterns: r.Hits,
		Defaulted:       r.Defaulted,
	}
}
