package mongo

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	adminapp "github.com/solvia-mx/solvia-services/api/internal/admin/application"
	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LegalTemplateRepository implements the legal template port over MongoDB.
type LegalTemplateRepository struct {
	collection *mongo.Collection
}

// NewLegalTemplateRepository binds the repository to its collection.
func NewLegalTemplateRepository(db *mongo.Database, collectionName string) *LegalTemplateRepository {
	return &LegalTemplateRepository{collection: db.Collection(collectionName)}
}

// Find lists templates sorted by key.
func (r *LegalTemplateRepository) Find(ctx context.Context, filter adminapp.LegalTemplateFilter, paging adminapp.Paging) ([]admindomain.LegalTemplate, error) {
	mongoFilter := bson.M{}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"key": pattern},
			bson.M{"title": pattern},
			bson.M{"body": pattern},
		}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "key", Value: 1}})
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

	templates := make([]admindomain.LegalTemplate, 0)
	for cursor.Next(ctx) {
		var doc LegalTemplateDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		templates = append(templates, mapLegalTemplateDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}

// FindByID restores one template by its ObjectID hex. An id that is not a
// valid ObjectID cannot name a document, so it reports not found.
func (r *LegalTemplateRepository) FindByID(ctx context.Context, id string) (*admindomain.LegalTemplate, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var doc LegalTemplateDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	template := mapLegalTemplateDocument(doc)
	return &template, nil
}

// Create inserts a new template.
func (r *LegalTemplateRepository) Create(ctx context.Context, template *admindomain.LegalTemplate) error {
	if template == nil {
		return errors.New("legal template payload is nil")
	}
	doc := mapLegalTemplateToDocument(template)
	doc.ID = primitive.NewObjectID()
	template.ID = doc.ID.Hex()
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Update replaces the mutable fields of an existing template.
func (r *LegalTemplateRepository) Update(ctx context.Context, template *admindomain.LegalTemplate) error {
	if template == nil {
		return errors.New("legal template payload is nil")
	}
	if strings.TrimSpace(template.ID) == "" {
		return errors.New("legal template id is required")
	}
	objectID, err := primitive.ObjectIDFromHex(template.ID)
	if err != nil {
		return err
	}
	doc := mapLegalTemplateToDocument(template)
	update := bson.M{
		"key":       doc.Key,
		"title":     doc.Title,
		"body":      doc.Body,
		"updatedAt": doc.UpdatedAt,
	}
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": update})
	return err
}

func mapLegalTemplateDocument(doc LegalTemplateDocument) admindomain.LegalTemplate {
	return admindomain.LegalTemplate{
		ID:        doc.ID.Hex(),
		Key:       doc.Key,
		Title:     doc.Title,
		Body:      doc.Body,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func mapLegalTemplateToDocument(template *admindomain.LegalTemplate) LegalTemplateDocument {
	createdAt := template.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := template.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return LegalTemplateDocument{
		Key:       template.Key,
		Title:     template.Title,
		Body:      template.Body,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
