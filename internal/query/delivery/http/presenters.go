package http

import (
	"time"

	"hardware-ai-orchestrator/internal/knowledge"
	"hardware-ai-orchestrator/internal/model"
	"hardware-ai-orchestrator/internal/query"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text           string `json:"text"            binding:"required"`
	Expertise      string `json:"expertise"       binding:"omitempty"`
	Phase          string `json:"phase"           binding:"omitempty"`
	DeclaredDomain string `json:"declared_domain" binding:"omitempty,max=64"`
}

func (r analyzeReq) toInput() query.AnalyzeInput {
	return query.AnalyzeInput{
		Text:           r.Text,
		Expertise:      model.UserExpertise(r.Expertise),
		Phase:          model.ProjectPhase(r.Phase),
		DeclaredDomain: r.DeclaredDomain,
	}
}

type feedbackReq struct {
	RequestID      string `json:"request_id"      binding:"omitempty,max=64"`
	Model          string `json:"model"           binding:"required,max=64"`
	Correct        bool   `json:"correct"`
	SuggestedModel string `json:"suggested_model" binding:"omitempty,max=64"`
	Comment        string `json:"comment"         binding:"omitempty,max=1000"`
}

func (r feedbackReq) toInput() query.FeedbackInput {
	return query.FeedbackInput{
		RequestID:      r.RequestID,
		Model:          r.Model,
		Correct:        r.Correct,
		SuggestedModel: r.SuggestedModel,
		Comment:        r.Comment,
	}
}

// --- Response DTOs ---

type classificationResp struct {
	Category        string   `json:"category"`
	Specificity     float64  `json:"specificity"`
	MatchedPatterns []string `json:"matched_patterns,omitempty"`
	Defaulted       bool     `json:"defaulted"`
}

type signalResp struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type complexityResp struct {
	Score        float64      `json:"score"`
	ContextDelta float64      `json:"context_delta"`
	Signals      []signalResp `json:"signals"`
	Rationale    []string     `json:"rationale,omitempty"`
}

type analyzeResp struct {
	RequestID      string             `json:"request_id,omitempty"`
	Intent         classificationResp `json:"intent"`
	Domain         classificationResp `json:"domain"`
	Complexity     complexityResp     `json:"complexity"`
	Model          string             `json:"selected_model"`
	Confidence     float64            `json:"confidence"`
	Fallbacks      []string           `json:"fallback_models"`
	OutOfRange     bool               `json:"out_of_range,omitempty"`
	Knowledge      *knowledge.Context `json:"knowledge,omitempty"`
	CatalogVersion string             `json:"catalog_version"`
	AnalyzedAt     time.Time          `json:"analyzed_at"`
	ElapsedMS      float64            `json:"elapsed_ms"`
}

func (h *handler) newAnalyzeResp(requestID string, out query.RoutingDecision) analyzeResp {
	signals := make([]signalResp, 0, len(out.Complexity.Signals))
	for _, s := range out.Complexity.Signals {
		signals = append(signals, signalResp{Name: s.Name, Value: s.Value})
	}

	resp := analyzeResp{
		RequestID: requestID,
		Intent:    newClassificationResp(out.Intent),
		Domain:    newClassificationResp(out.Domain),
		Complexity: complexityResp{
			Score:        out.Complexity.Score,
			ContextDelta: out.Complexity.ContextDelta,
			Signals:      signals,
			Rationale:    out.Complexity.Rationale,
		},
		Model:          out.Model,
		Confidence:     out.Confidence,
		Fallbacks:      out.Fallbacks,
		OutOfRange:     out.OutOfRange,
		CatalogVersion: out.CatalogVersion,
		AnalyzedAt:     out.AnalyzedAt,
		ElapsedMS:      float64(out.Elapsed.Microseconds()) / 1000,
	}
	if !out.Knowledge.Empty() {
		k := out.Knowledge
		resp.Knowledge = &k
	}
	return resp
}

func newClassificationResp(c query.Classification) classificationResp {
	return classificationResp{
		Category:        c.Category,
		Specificity:     c.Specificity,
		MatchedPatterns: c.MatchedPatterns,
		Defaulted:       c.Defaulted,
	}
}

type statusResp struct {
	Status         string `json:"status"`
	CatalogVersion string `json:"catalog_version"`
	Intents        int    `json:"intents"`
	Domains        int    `json:"domains"`
	Tiers          int    `json:"tiers"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
}

func (h *handler) newStatusResp(out query.Status) statusResp {
	return statusResp{
		Status:         out.Status,
		CatalogVersion: out.CatalogVersion,
		Intents:        out.Intents,
		Domains:        out.Domains,
		Tiers:          out.Tiers,
		UptimeSeconds:  int64(out.Uptime.Seconds()),
	}
}
