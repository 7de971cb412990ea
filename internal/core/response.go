package core

// Reasoning step kinds.
const (
	StepAnalysis       = "analysis"
	StepSynthesis      = "synthesis"
	StepHypothesis     = "hypothesis"
	StepEvidenceReview = "evidence_review"
	StepConclusion     = "conclusion"
)

type ReasoningStep struct {
	Number      int     `json:"step_number"`
	Description string  `json:"description"`
	Kind        string  `json:"kind"`
	Confidence  float64 `json:"confidence"`
}

type ConfidenceAssessment struct {
	Overall     float64  `json:"overall"`
	Reasoning   string   `json:"reasoning"`
	Limitations []string `json:"limitations,omitempty"`
}

// AgentResponse is the structural contract every generation strategy must
// satisfy, fallbacks included. Callers rely on this shape and nothing else,
// which is what makes strategies interchangeable.
type AgentResponse struct {
	Message            string               `json:"message"`
	ReasoningSteps     []ReasoningStep      `json:"reasoning_steps"`
	FollowUpQuestions  []string             `json:"follow_up_questions,omitempty"`
	InvestigativeLeads []string             `json:"investigative_leads,omitempty"`
	Confidence         ConfidenceAssessment `json:"confidence_assessment"`
	// TokenUsage is a rough estimate, reported for accounting only.
	TokenUsage int `json:"token_usage,omitempty"`
}
