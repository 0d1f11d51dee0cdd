package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	publicdomain "github.com/solvia-mx/solvia-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DiagnosticRepository implements the public-context diagnostic port over
// MongoDB.
type DiagnosticRepository struct {
	collection *mongo.Collection
}

// NewDiagnosticRepository binds the repository to its collection.
func NewDiagnosticRepository(db *mongo.Database, collectionName string) *DiagnosticRepository {
	return &DiagnosticRepository{collection: db.Collection(collectionName)}
}

// Create inserts a fresh submission. New diagnostics always start as a
// new lead for the back-office.
func (r *DiagnosticRepository) Create(ctx context.Context, diagnostic *publicdomain.Diagnostic) error {
	if diagnostic == nil {
		return errors.New("diagnostic payload is nil")
	}
	doc := mapDiagnosticToDocument(diagnostic)
	doc.ID = primitive.NewObjectID()
	diagnostic.ID = doc.ID.Hex()
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// FindByToken restores a submission by its public token.
func (r *DiagnosticRepository) FindByToken(ctx context.Context, token string) (*publicdomain.Diagnostic, error) {
	var doc DiagnosticDocument
	filter := bson.M{"publicToken": strings.TrimSpace(token)}
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	diagnostic := mapDocumentToDiagnostic(doc)
	return &diagnostic, nil
}

func mapDiagnosticToDocument(diagnostic *publicdomain.Diagnostic) DiagnosticDocument {
	createdAt := diagnostic.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return DiagnosticDocument{
		PublicToken:     diagnostic.PublicToken,
		ContactName:     diagnostic.ContactName,
		ContactEmail:    diagnostic.ContactEmail,
		BusinessType:    string(diagnostic.Answers.BusinessType),
		DigitalMaturity: string(diagnostic.Answers.DigitalMaturity),
		Goals:           goalsToStrings(diagnostic.Answers.Goals),
		CompanySize:     string(diagnostic.Answers.CompanySize),
		AdditionalNeeds: needsToStrings(diagnostic.Answers.AdditionalNeeds),
		Result:          mapResultToDocument(diagnostic.Result),
		LeadStatus:      "nuevo",
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func mapDocumentToDiagnostic(doc DiagnosticDocument) publicdomain.Diagnostic {
	return publicdomain.Diagnostic{
		ID:           doc.ID.Hex(),
		PublicToken:  doc.PublicToken,
		ContactName:  doc.ContactName,
		ContactEmail: doc.ContactEmail,
		Answers: publicdomain.Answers{
			BusinessType:    publicdomain.BusinessType(doc.BusinessType),
			DigitalMaturity: publicdomain.DigitalMaturity(doc.DigitalMaturity),
			Goals:           stringsToGoals(doc.Goals),
			CompanySize:     publicdomain.CompanySize(doc.CompanySize),
			AdditionalNeeds: stringsToNeeds(doc.AdditionalNeeds),
		},
		Result:    mapDocumentToResult(doc.Result),
		CreatedAt: doc.CreatedAt,
	}
}

func mapResultToDocument(result publicdomain.DiagnosticResult) DiagnosticResultDocument {
	doc := DiagnosticResultDocument{
		Qualifies:   result.Qualifies,
		Primary:     mapScoredSolutionToDocument(result.Primary),
		Message:     MessageDocument(result.Message),
		Urgency:     string(result.Urgency),
		NextPrimary: NextStepDocument(result.NextSteps.Primary),
	}
	for _, c := range result.Complementary {
		doc.Complementary = append(doc.Complementary, mapScoredSolutionToDocument(c))
	}
	if result.NextSteps.Secondary != nil {
		secondary := NextStepDocument(*result.NextSteps.Secondary)
		doc.NextSecondary = &secondary
	}
	return doc
}

func mapDocumentToResult(doc DiagnosticResultDocument) publicdomain.DiagnosticResult {
	result := publicdomain.DiagnosticResult{
		Qualifies: doc.Qualifies,
		Primary:   mapDocumentToScoredSolution(doc.Primary),
		Message:   publicdomain.PersonalizedMessage(doc.Message),
		Urgency:   publicdomain.Urgency(doc.Urgency),
		NextSteps: publicdomain.NextSteps{
			Primary: publicdomain.NextStep(doc.NextPrimary),
		},
	}
	for _, c := range doc.Complementary {
		result.Complementary = append(result.Complementary, mapDocumentToScoredSolution(c))
	}
	if doc.NextSecondary != nil {
		secondary := publicdomain.NextStep(*doc.NextSecondary)
		result.NextSteps.Secondary = &secondary
	}
	return result
}

func mapScoredSolutionToDocument(s publicdomain.ScoredSolution) ScoredSolutionDocument {
	return ScoredSolutionDocument{
		SolutionID:  string(s.ID),
		Title:       s.Title,
		Description: s.Description,
		Icon:        s.Icon,
		Link:        s.Link,
		MatchScore:  s.MatchScore,
		Reason:      s.Reason,
	}
}

func mapDocumentToScoredSolution(doc ScoredSolutionDocument) publicdomain.ScoredSolution {
	return publicdomain.ScoredSolution{
		Solution: publicdomain.Solution{
			ID:          publicdomain.SolutionID(doc.SolutionID),
			Title:       doc.Title,
			Description: doc.Description,
			Icon:        doc.Icon,
			Link:        doc.Link,
		},
		MatchScore: doc.MatchScore,
		Reason:     doc.Reason,
	}
}

func goalsToStrings(goals []publicdomain.Goal) []string {
	result := make([]string, 0, len(goals))
	for _, g := range goals {
		result = append(result, string(g))
	}
	return result
}

func stringsToGoals(values []string) []publicdomain.Goal {
	result := make([]publicdomain.Goal, 0, len(values))
	for _, v := range values {
		result = append(result, publicdomain.Goal(v))
	}
	return result
}

func needsToStrings(needs []publicdomain.AdditionalNeed) []string {
	result := make([]string, 0, len(needs))
	for _, n := range needs {
		result = append(result, string(n))
	}
	return result
}

func stringsToNeeds(values []string) []publicdomain.AdditionalNeed {
	result := make([]publicdomain.AdditionalNeed, 0, len(values))
	for _, v := range values {
		result = append(result, publicdomain.AdditionalNeed(v))
	}
	return result
}
