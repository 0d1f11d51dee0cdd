package public

import (
	"time"

	publicdomain "github.com/solvia-mx/solvia-services/api/internal/public/domain"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type answersPayload struct {
	BusinessType    string   `json:"businessType"`
	DigitalMaturity string   `json:"digitalMaturity"`
	Goals           []string `json:"goals"`
	CompanySize     string   `json:"companySize"`
	AdditionalNeeds []string `json:"additionalNeeds"`
}

type diagnosticCreateRequest struct {
	ContactName  string          `json:"contactName"`
	ContactEmail string          `json:"contactEmail"`
	Answers      *answersPayload `json:"answers"`
}

type solutionResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Link        string `json:"link"`
}

type scoredSolutionResponse struct {
	solutionResponse
	MatchScore int    `json:"matchScore"`
	Reason     string `json:"reason,omitempty"`
}

type messageResponse struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Insight  string `json:"insight"`
}

type nextStepResponse struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type nextStepsResponse struct {
	Primary   nextStepResponse  `json:"primary"`
	Secondary *nextStepResponse `json:"secondary,omitempty"`
}

type diagnosticResultResponse struct {
	Qualifies     bool                     `json:"qualifies"`
	Primary       scoredSolutionResponse   `json:"primary"`
	Complementary []scoredSolutionResponse `json:"complementary"`
	Message       messageResponse          `json:"message"`
	Urgency       string                   `json:"urgency"`
	NextSteps     nextStepsResponse        `json:"nextSteps"`
}

type diagnosticResponse struct {
	Token     string                   `json:"token"`
	CreatedAt string                   `json:"createdAt"`
	Result    diagnosticResultResponse `json:"result"`
}

func buildSolutionResponse(solution publicdomain.Solution) solutionResponse {
	return solutionResponse{
		ID:          string(solution.ID),
		Title:       solution.Title,
		Description: solution.Description,
		Icon:        solution.Icon,
		Link:        solution.Link,
	}
}

func buildScoredSolutionResponse(scored publicdomain.ScoredSolution) scoredSolutionResponse {
	return scoredSolutionResponse{
		solutionResponse: buildSolutionResponse(scored.Solution),
		MatchScore:       scored.MatchScore,
		Reason:           scored.Reason,
	}
}

func buildResultResponse(result publicdomain.DiagnosticResult) diagnosticResultResponse {
	complementary := make([]scoredSolutionResponse, 0, len(result.Complementary))
	for _, scored := range result.Complementary {
		complementary = append(complementary, buildScoredSolutionResponse(scored))
	}

	steps := nextStepsResponse{
		Primary: nextStepResponse{
			Text: result.NextSteps.Primary.Text,
			Link: result.NextSteps.Primary.Link,
		},
	}
	if result.NextSteps.Secondary != nil {
		steps.Secondary = &nextStepResponse{
			Text: result.NextSteps.Secondary.Text,
			Link: result.NextSteps.Secondary.Link,
		}
	}

	return diagnosticResultResponse{
		Qualifies:     result.Qualifies,
		Primary:       buildScoredSolutionResponse(result.Primary),
		Complementary: complementary,
		Message: messageResponse{
			Title:    result.Message.Title,
			Subtitle: result.Message.Subtitle,
			Insight:  result.Message.Insight,
		},
		Urgency:   string(result.Urgency),
		NextSteps: steps,
	}
}

func (h *Handler) buildDiagnosticResponse(diagnostic publicdomain.Diagnostic) diagnosticResponse {
	createdAt := diagnostic.CreatedAt
	if h.location != nil {
		createdAt = createdAt.In(h.location)
	}
	return diagnosticResponse{
		Token:     diagnostic.PublicToken,
		CreatedAt: createdAt.Format(time.RFC3339),
		Result:    buildResultResponse(diagnostic.Result),
	}
}
