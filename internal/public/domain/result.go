package domain

// nextStepsQuerySuffix tags outbound links so the site can attribute the
// visit to the quiz.
const nextStepsQuerySuffix = "?origen=diagnostico"

// ScoredSolution pairs a catalog entry with its match score. Reason is set
// only on the primary recommendation.
type ScoredSolution struct {
	Solution
	MatchScore int
	Reason     string
}

// NextStep is one call-to-action shown under the result.
type NextStep struct {
	Text string
	Link string
}

// NextSteps holds the primary call-to-action and, only when complementary
// solutions exist, a secondary one. Secondary is absent (nil), not empty.
type NextSteps struct {
	Primary   NextStep
	Secondary *NextStep
}

// DiagnosticResult is the immutable output of one engine run.
type DiagnosticResult struct {
	Qualifies     bool
	Primary       ScoredSolution
	Complementary []ScoredSolution
	Message       PersonalizedMessage
	Urgency       Urgency
	NextSteps     NextSteps
}

// Assemble runs scoring, selection, narrative and urgency in a single
// deterministic pass and merges them into the final result. It is pure and
// safe to call concurrently: the catalog is read-only and every
// accumulator is local to the call.
func Assemble(a Answers) DiagnosticResult {
	scores := Score(a)
	primaryID := SelectPrimary(scores)
	complementaryIDs := SelectComplementary(scores, primaryID)

	primarySolution, _ := SolutionByID(primaryID)
	primary := ScoredSolution{
		Solution:   primarySolution,
		MatchScore: scores[primaryID],
		Reason:     Explain(primaryID, a),
	}

	complementary := make([]ScoredSolution, 0, len(complementaryIDs))
	for _, id := range complementaryIDs {
		solution, _ := SolutionByID(id)
		complementary = append(complementary, ScoredSolution{
			Solution:   solution,
			MatchScore: scores[id],
		})
	}

	steps := NextSteps{
		Primary: NextStep{
			Text: "Agenda una demostración",
			Link: primarySolution.Link + nextStepsQuerySuffix,
		},
	}
	if len(complementary) > 0 {
		steps.Secondary = &NextStep{
			Text: "Explora soluciones complementarias",
			Link: complementary[0].Link + nextStepsQuerySuffix,
		}
	}

	return DiagnosticResult{
		Qualifies:     primary.MatchScore > 0,
		Primary:       primary,
		Complementary: complementary,
		Message:       Personalize(a),
		Urgency:       ClassifyUrgency(a),
		NextSteps:     steps,
	}
}
