package learning

import (
	"fmt"
	"math/rand"

	"github.com/cityspark/cityspark-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// OUTCOME PREDICTION
// ══════════════════════════════════════════════════════════════════════════════

// Prediction estimates how a student is likely to fare on a learning path.
type Prediction struct {
	CompletionProbability  float64  `json:"completion_probability"`
	ExpectedMastery        float64  `json:"expected_mastery"`
	EstimatedTime          float64  `json:"estimated_time"` // hours
	SuccessFactors         []string `json:"success_factors"`
	RiskFactors            []string `json:"risk_factors"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

// Predictor produces outcome predictions. The random source is injected
// so predictions are reproducible under a fixed seed.
type Predictor struct {
	rng *rand.Rand
}

// NewPredictor creates a predictor backed by the given random source.
func NewPredictor(rng *rand.Rand) *Predictor {
	return &Predictor{rng: rng}
}

// Predict estimates outcomes for the profile following the path. The
// probabilistic fields are sampled; the factor lists are deterministic
// functions of the inputs.
func (p *Predictor) Predict(profile *student.Profile, path *Path) Prediction {
	return Prediction{
		CompletionProbability:  p.uniform(0.7, 0.95),
		ExpectedMastery:        p.uniform(0.75, 0.95),
		EstimatedTime:          float64(path.EstimatedDuration) * p.uniform(0.8, 1.2),
		SuccessFactors:         successFactors(profile),
		RiskFactors:            riskFactors(profile, path),
		ImprovementSuggestions: improvementSuggestions(),
	}
}

// uniform samples from [low, high).
func (p *Predictor) uniform(low, high float64) float64 {
	return low + p.rng.Float64()*(high-low)
}

func successFactors(profile *student.Profile) []string {
	var factors []string

	if profile.LearningStyle != "" {
		factors = append(factors, fmt.Sprintf("Learning style: %s", profile.LearningStyle))
	}
	if len(profile.Interests) > 2 {
		factors = append(factors, "Strong interest alignment")
	}
	if len(profile.Goals) > 1 {
		factors = append(factors, "Clear learning goals")
	}

	return factors
}

func riskFactors(profile *student.Profile, path *Path) []string {
	var risks []string

	if path.EstimatedDuration > 60 {
		risks = append(risks, "Long learning duration may impact completion")
	}
	if len(profile.Weaknesses) > 3 {
		risks = append(risks, "Multiple weakness areas may require extra support")
	}

	return risks
}

func improvementSuggestions() []string {
	return []string{
		"Set regular study schedules",
		"Use gamified learning approaches",
		"Seek peer collaboration opportunities",
	}
}
