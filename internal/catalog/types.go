package catalog

// Signal identifiers. These are data keys shared between the weight table
// and the extractors, not behavior switches.
const (
	SignalTechnicalDensity  = "technical_density"
	SignalStandardsMention  = "standards_mention"
	SignalConstraintCount   = "constraint_count"
	SignalDomainSpecificity = "domain_specificity"
	SignalComparative       = "comparative_language"
	SignalSpecificity       = "parameter_specificity"
	SignalAnalysisDepth     = "analysis_depth"
)

// IntentCategory is one row of the intent table. Categories are matched by
// their trigger patterns; Priority is the stable tie-break rank (lower wins).
type IntentCategory struct {
	Name           string   `mapstructure:"name"`
	Priority       int      `mapstructure:"priority"`
	Description    string   `mapstructure:"description"`
	Patterns       []string `mapstructure:"patterns"`
	BaseComplexity float64  `mapstructure:"base_complexity"`
}

// DomainCategory is one row of the hardware-domain table.
type DomainCategory struct {
	Name             string   `mapstructure:"name"`
	Priority         int      `mapstructure:"priority"`
	Description      string   `mapstructure:"description"`
	Patterns         []string `mapstructure:"patterns"`
	ComplexityWeight float64  `mapstructure:"complexity_weight"`
}

// ModelTier maps a complexity band to a backend model. Bands are half-open
// [MinComplexity, MaxComplexity); the top tier additionally includes 1.0.
type ModelTier struct {
	ModelID       string   `mapstructure:"model_id"`
	MinComplexity float64  `mapstructure:"min_complexity"`
	MaxComplexity float64  `mapstructure:"max_complexity"`
	CostWeight    float64  `mapstructure:"cost_weight"`
	Strengths     []string `mapstructure:"strengths"`
	Description   string   `mapstructure:"description"`
}

// ContainsScore reports whether score falls inside the tier's band,
// honoring the inclusive upper bound of the top tier.
func (t ModelTier) ContainsScore(score, tableMax float64) bool {
	if score < t.MinComplexity {
		return false
	}
	if score < t.MaxComplexity {
		return true
	}
	return t.MaxComplexity == tableMax && score == tableMax
}

// SignalWeight assigns one extractor's weight in the complexity average.
type SignalWeight struct {
	Name   string  `mapstructure:"name"`
	Weight float64 `mapstructure:"weight"`
}

// ConstraintGroup is one family of engineering-constraint vocabulary
// (thermal, EMI, cost, ...). Distinct matched groups are what the
// multi-constraint signal counts.
type ConstraintGroup struct {
	Name  string   `mapstructure:"name"`
	Terms []string `mapstructure:"terms"`
}

// Lexicon holds the keyword vocabularies the signal extractors scan for.
type Lexicon struct {
	// TechnicalTerms are single-token domain words. Every word occurring
	// inside a StandardsTokens phrase must also be listed here so that a
	// standards mention can never lower the technical-density fraction.
	TechnicalTerms []string `mapstructure:"technical_terms"`

	// StandardsTokens are regulatory/qualification identifiers; any hit
	// drives the standards signal to 1.0.
	StandardsTokens []string `mapstructure:"standards_tokens"`

	ConstraintGroups []ConstraintGroup `mapstructure:"constraint_groups"`
	ComparativeCues  []string          `mapstructure:"comparative_cues"`
	CalculationCues  []string          `mapstructure:"calculation_cues"`
}

// ContextAdjustment defines the bounded user-context deltas added to the
// weighted signal average. The net delta is clamped to ±Cap so declared
// context can never override strong textual evidence.
type ContextAdjustment struct {
	Expert       float64 `mapstructure:"expert"`
	Senior       float64 `mapstructure:"senior"`
	Novice       float64 `mapstructure:"novice"`
	LatePhase    float64 `mapstructure:"late_phase"`    // validation or production
	ConceptPhase float64 `mapstructure:"concept_phase"` // early exploration
	Cap          float64 `mapstructure:"cap"`
}

// Catalog is the full routing configuration: category tables, tier table,
// signal weights and lexicons. It is immutable once published through a
// Store; replacing configuration swaps the whole catalog atomically.
type Catalog struct {
	Version string `mapstructure:"version"`

	// MatchThreshold is the minimum raw specificity (0.25 per distinct
	// pattern hit, capped at 1.0) a category needs before it can win.
	MatchThreshold float64 `mapstructure:"match_threshold"`

	// NotableSignal is the value above which a signal earns a rationale line.
	NotableSignal float64 `mapstructure:"notable_signal"`

	DefaultIntent string `mapstructure:"default_intent"`
	DefaultDomain string `mapstructure:"default_domain"`

	Intents []IntentCategory `mapstructure:"intents"`
	Domains []DomainCategory `mapstructure:"domains"`
	Tiers   []ModelTier      `mapstructure:"tiers"`

	SignalWeights []SignalWeight    `mapstructure:"signal_weights"`
	Lexicon       Lexicon           `mapstructure:"lexicon"`
	Context       ContextAdjustment `mapstructure:"context"`
}

// Weight returns the configured weight for a signal name, zero if absent.
func (c *Catalog) Weight(name string) float64 {
	for _, w := range c.SignalWeights {
		if w.Name == name {
			return w.Weight
		}
	}
	return 0
}

// MaxDomainWeight returns the largest configured domain complexity weight,
// used to normalize the domain-specificity signal into [0,1].
func (c *Catalog) MaxDomainWeight() float64 {
	max := 0.0
	for _, d := range c.Domains {
		if d.ComplexityWeight > max {
			max = d.ComplexityWeight
		}
	}
	return max
}

// TableMax returns the upper bound of the tier table (1.0 for a valid
// catalog). Tiers are not required to be listed in band order.
func (c *Catalog) TableMax() float64 {
	max := 0.0
	for _, t := range c.Tiers {
		if t.MaxComplexity > max {
			max = t.MaxComplexity
		}
	}
	return max
}
