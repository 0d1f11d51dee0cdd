package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChangeOrderRepository implements the admin change-order port over MongoDB.
type ChangeOrderRepository struct {
	collection *mongo.Collection
}

// NewChangeOrderRepository binds the repository to its collection.
func NewChangeOrderRepository(db *mongo.Database, collectionName string) *ChangeOrderRepository {
	return &ChangeOrderRepository{collection: db.Collection(collectionName)}
}

// FindByOrder lists the change orders of one parent order, oldest first so
// the back office reads them as a history.
func (r *ChangeOrderRepository) FindByOrder(ctx context.Context, orderID string) ([]admindomain.ChangeOrder, error) {
	parentID, err := primitive.ObjectIDFromHex(strings.TrimSpace(orderID))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"orderId": parentID}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	changes := make([]admindomain.ChangeOrder, 0)
	for cursor.Next(ctx) {
		var doc ChangeOrderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		change, err := mapChangeOrderDocument(doc)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return changes, nil
}

// FindByID restores one change order by its ObjectID hex. An id that is
// not a valid ObjectID cannot name a document, so it reports not found.
func (r *ChangeOrderRepository) FindByID(ctx context.Context, id string) (*admindomain.ChangeOrder, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var doc ChangeOrderDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	change, err := mapChangeOrderDocument(doc)
	if err != nil {
		return nil, err
	}
	return &change, nil
}

// Create inserts a new change order document.
func (r *ChangeOrderRepository) Create(ctx context.Context, change *admindomain.ChangeOrder) error {
	if change == nil {
		return errors.New("change order payload is nil")
	}
	doc, err := mapChangeOrderToDocument(change)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()
	change.ID = doc.ID.Hex()
	_, err = r.collection.InsertOne(ctx, doc)
	return err
}

// Update replaces the mutable fields of an existing change order.
func (r *ChangeOrderRepository) Update(ctx context.Context, change *admindomain.ChangeOrder) error {
	if change == nil {
		return errors.New("change order payload is nil")
	}
	if strings.TrimSpace(change.ID) == "" {
		return errors.New("change order id is required")
	}
	objectID, err := primitive.ObjectIDFromHex(change.ID)
	if err != nil {
		return err
	}
	doc, err := mapChangeOrderToDocument(change)
	if err != nil {
		return err
	}
	update := bson.M{
		"description": doc.Description,
		"lines":       doc.Lines,
		"amountDelta": doc.AmountDelta,
		"status":      doc.Status,
		"updatedAt":   doc.UpdatedAt,
	}
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": update})
	return err
}

func mapChangeOrderDocument(doc ChangeOrderDocument) (admindomain.ChangeOrder, error) {
	status, err := admindomain.NewChangeOrderStatus(doc.Status)
	if err != nil {
		return admindomain.ChangeOrder{}, err
	}

	lines := make([]admindomain.ChangeOrderLine, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		lines = append(lines, admindomain.ChangeOrderLine{
			Concept:   line.Concept,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return admindomain.ChangeOrder{
		ID:          doc.ID.Hex(),
		OrderID:     doc.OrderID.Hex(),
		Folio:       doc.Folio,
		Description: doc.Description,
		Lines:       lines,
		AmountDelta: doc.AmountDelta,
		Status:      status,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func mapChangeOrderToDocument(change *admindomain.ChangeOrder) (ChangeOrderDocument, error) {
	orderID, err := primitive.ObjectIDFromHex(strings.TrimSpace(change.OrderID))
	if err != nil {
		return ChangeOrderDocument{}, err
	}

	createdAt := change.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := change.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	lines := make([]ChangeOrderLineDocument, 0, len(change.Lines))
	for _, line := range change.Lines {
		lines = append(lines, ChangeOrderLineDocument{
			Concept:   line.Concept,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return ChangeOrderDocument{
		OrderID:     orderID,
		Folio:       change.Folio,
		Description: change.Description,
		Lines:       lines,
		AmountDelta: change.AmountDelta,
		Status:      string(change.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
