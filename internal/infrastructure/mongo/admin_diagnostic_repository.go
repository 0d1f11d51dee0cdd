package mongo

import (
	"context"
	"errors"
	"regexp"
	"strings"

	adminapp "github.com/solvia-mx/solvia-services/api/internal/admin/application"
	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminDiagnosticRepository serves the back-office lead screens from the
// same diagnostics collection the public side writes.
type AdminDiagnosticRepository struct {
	collection *mongo.Collection
}

// NewAdminDiagnosticRepository binds the repository to its collection.
func NewAdminDiagnosticRepository(db *mongo.Database, collectionName string) *AdminDiagnosticRepository {
	return &AdminDiagnosticRepository{collection: db.Collection(collectionName)}
}

// Find translates lead filters into a Mongo query, newest first.
func (r *AdminDiagnosticRepository) Find(ctx context.Context, filter adminapp.DiagnosticFilter, paging adminapp.Paging) ([]admindomain.Diagnostic, error) {
	mongoFilter := bson.M{}
	if businessType := strings.TrimSpace(filter.BusinessType); businessType != "" {
		mongoFilter["businessType"] = businessType
	}
	if status := strings.TrimSpace(filter.LeadStatus); status != "" {
		mongoFilter["leadStatus"] = status
	}
	if filter.Qualifies != nil {
		mongoFilter["result.qualifies"] = *filter.Qualifies
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"contactName": pattern},
			bson.M{"contactEmail": pattern},
			bson.M{"adminNotes": pattern},
		}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if paging.Limit > 0 {
		findOpts.SetLimit(int64(paging.Limit))
		if paging.Page > 1 {
			findOpts.SetSkip(int64((paging.Page - 1) * paging.Limit))
		}
	}

	cursor, err := r.collection.Find(ctx, mongoFilter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	diagnostics := make([]admindomain.Diagnostic, 0)
	for cursor.Next(ctx) {
		var doc DiagnosticDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		diagnostics = append(diagnostics, mapAdminDiagnosticDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return diagnostics, nil
}

// FindByID restores one lead by its ObjectID hex. An id that is not a
// valid ObjectID cannot name a document, so it reports not found.
func (r *AdminDiagnosticRepository) FindByID(ctx context.Context, id string) (*admindomain.Diagnostic, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var doc DiagnosticDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	diagnostic := mapAdminDiagnosticDocument(doc)
	return &diagnostic, nil
}

// UpdateLead persists only the follow-up fields; answers and the engine
// result are immutable once stored.
func (r *AdminDiagnosticRepository) UpdateLead(ctx context.Context, diagnostic *admindomain.Diagnostic) error {
	if diagnostic == nil {
		return errors.New("diagnostic payload is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(diagnostic.ID))
	if err != nil {
		return err
	}
	update := bson.M{
		"leadStatus": string(diagnostic.LeadStatus),
		"adminNotes": diagnostic.AdminNotes,
		"updatedAt":  diagnostic.UpdatedAt,
	}
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": update})
	return err
}

// mapAdminDiagnosticDocument projects the shared document onto the
// flattened admin view.
func mapAdminDiagnosticDocument(doc DiagnosticDocument) admindomain.Diagnostic {
	status, err := admindomain.NewLeadStatus(doc.LeadStatus)
	if err != nil {
		status = admindomain.LeadNew
	}

	return admindomain.Diagnostic{
		ID:              doc.ID.Hex(),
		PublicToken:     doc.PublicToken,
		ContactName:     doc.ContactName,
		ContactEmail:    admindomain.Email(doc.ContactEmail),
		BusinessType:    doc.BusinessType,
		DigitalMaturity: doc.DigitalMaturity,
		Goals:           append([]string(nil), doc.Goals...),
		CompanySize:     doc.CompanySize,
		AdditionalNeeds: append([]string(nil), doc.AdditionalNeeds...),
		Qualifies:       doc.Result.Qualifies,
		PrimarySolution: doc.Result.Primary.SolutionID,
		PrimaryScore:    doc.Result.Primary.MatchScore,
		Urgency:         doc.Result.Urgency,
		LeadStatus:      status,
		AdminNotes:      doc.AdminNotes,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
