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

// PriceItemRepository implements the pricing catalog port over MongoDB.
type PriceItemRepository struct {
	collection *mongo.Collection
}

// NewPriceItemRepository binds the repository to its collection.
func NewPriceItemRepository(db *mongo.Database, collectionName string) *PriceItemRepository {
	return &PriceItemRepository{collection: db.Collection(collectionName)}
}

// Find translates catalog filters into a Mongo query, sorted by key so the
// picker renders a stable list.
func (r *PriceItemRepository) Find(ctx context.Context, filter adminapp.PriceItemFilter, paging adminapp.Paging) ([]admindomain.PriceItem, error) {
	mongoFilter := bson.M{}
	if category := strings.TrimSpace(filter.Category); category != "" {
		mongoFilter["category"] = category
	}
	if filter.ActiveOnly {
		mongoFilter["active"] = true
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"key": pattern},
			bson.M{"name": pattern},
			bson.M{"description": pattern},
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

	items := make([]admindomain.PriceItem, 0)
	for cursor.Next(ctx) {
		var doc PriceItemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, mapPriceItemDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID restores one catalog entry by its ObjectID hex. An id that is
// not a valid ObjectID cannot name a document, so it reports not found.
func (r *PriceItemRepository) FindByID(ctx context.Context, id string) (*admindomain.PriceItem, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var doc PriceItemDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	item := mapPriceItemDocument(doc)
	return &item, nil
}

// Create inserts a new catalog entry.
func (r *PriceItemRepository) Create(ctx context.Context, item *admindomain.PriceItem) error {
	if item == nil {
		return errors.New("price item payload is nil")
	}
	doc := mapPriceItemToDocument(item)
	doc.ID = primitive.NewObjectID()
	item.ID = doc.ID.Hex()
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Update replaces the mutable fields of an existing catalog entry.
func (r *PriceItemRepository) Update(ctx context.Context, item *admindomain.PriceItem) error {
	if item == nil {
		return errors.New("price item payload is nil")
	}
	if strings.TrimSpace(item.ID) == "" {
		return errors.New("price item id is required")
	}
	objectID, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return err
	}
	doc := mapPriceItemToDocument(item)
	update := bson.M{
		"key":         doc.Key,
		"name":        doc.Name,
		"description": doc.Description,
		"category":    doc.Category,
		"unitPrice":   doc.UnitPrice,
		"currency":    doc.Currency,
		"active":      doc.Active,
		"updatedAt":   doc.UpdatedAt,
	}
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": update})
	return err
}

func mapPriceItemDocument(doc PriceItemDocument) admindomain.PriceItem {
	return admindomain.PriceItem{
		ID:          doc.ID.Hex(),
		Key:         doc.Key,
		Name:        doc.Name,
		Description: doc.Description,
		Category:    doc.Category,
		UnitPrice:   admindomain.Money(doc.UnitPrice),
		Currency:    doc.Currency,
		Active:      doc.Active,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func mapPriceItemToDocument(item *admindomain.PriceItem) PriceItemDocument {
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := item.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return PriceItemDocument{
		Key:         item.Key,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		UnitPrice:   item.UnitPrice.Int(),
		Currency:    item.Currency,
		Active:      item.Active,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
