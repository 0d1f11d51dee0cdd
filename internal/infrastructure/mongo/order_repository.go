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

// OrderRepository implements the admin order port over MongoDB.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository binds the repository to its collection.
func NewOrderRepository(db *mongo.Database, collectionName string) *OrderRepository {
	return &OrderRepository{collection: db.Collection(collectionName)}
}

// Find translates order filters into a Mongo query, newest first.
func (r *OrderRepository) Find(ctx context.Context, filter adminapp.OrderFilter, paging adminapp.Paging) ([]admindomain.Order, error) {
	mongoFilter := bson.M{}
	if status := strings.TrimSpace(filter.Status); status != "" {
		mongoFilter["status"] = status
	}
	if diagnosticID := strings.TrimSpace(filter.DiagnosticID); diagnosticID != "" {
		mongoFilter["diagnosticId"] = diagnosticID
	}
	if client := strings.TrimSpace(filter.ClientName); client != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(client), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"clientName": pattern},
			bson.M{"folio": pattern},
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

	orders := make([]admindomain.Order, 0)
	for cursor.Next(ctx) {
		var doc OrderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		order, err := mapOrderDocument(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByID restores one order by its ObjectID hex. An id that is not a
// valid ObjectID cannot name a document, so it reports not found.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*admindomain.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var doc OrderDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	order, err := mapOrderDocument(doc)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts a new order document.
func (r *OrderRepository) Create(ctx context.Context, order *admindomain.Order) error {
	if order == nil {
		return errors.New("order payload is nil")
	}
	doc := mapOrderToDocument(order)
	doc.ID = primitive.NewObjectID()
	order.ID = doc.ID.Hex()
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Update replaces the mutable fields of an existing order.
func (r *OrderRepository) Update(ctx context.Context, order *admindomain.Order) error {
	if order == nil {
		return errors.New("order payload is nil")
	}
	if strings.TrimSpace(order.ID) == "" {
		return errors.New("order id is required")
	}
	objectID, err := primitive.ObjectIDFromHex(order.ID)
	if err != nil {
		return err
	}
	doc := mapOrderToDocument(order)
	update := bson.M{
		"diagnosticId":    doc.DiagnosticID,
		"clientName":      doc.ClientName,
		"clientEmail":     doc.ClientEmail,
		"lines":           doc.Lines,
		"discountPercent": doc.DiscountPercent,
		"taxPercent":      doc.TaxPercent,
		"status":          doc.Status,
		"legalTemplateId": doc.LegalTemplateID,
		"legalText":       doc.LegalText,
		"notes":           doc.Notes,
		"totals":          doc.Totals,
		"adjustments":     doc.Adjustments,
		"updatedAt":       doc.UpdatedAt,
	}
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": update})
	return err
}

func mapOrderDocument(doc OrderDocument) (admindomain.Order, error) {
	status, err := admindomain.NewOrderStatus(doc.Status)
	if err != nil {
		return admindomain.Order{}, err
	}

	lines := make([]admindomain.OrderLine, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		lines = append(lines, admindomain.OrderLine{
			PriceItemID: line.PriceItemID,
			Concept:     line.Concept,
			UnitPrice:   admindomain.Money(line.UnitPrice),
			Quantity:    line.Quantity,
		})
	}

	return admindomain.Order{
		ID:              doc.ID.Hex(),
		Folio:           doc.Folio,
		DiagnosticID:    doc.DiagnosticID,
		ClientName:      doc.ClientName,
		ClientEmail:     admindomain.Email(doc.ClientEmail),
		Lines:           lines,
		DiscountPercent: admindomain.Percent(doc.DiscountPercent),
		TaxPercent:      admindomain.Percent(doc.TaxPercent),
		Status:          status,
		LegalTemplateID: doc.LegalTemplateID,
		LegalText:       doc.LegalText,
		Notes:           doc.Notes,
		Totals: admindomain.OrderTotals{
			Subtotal: admindomain.Money(doc.Totals.Subtotal),
			Discount: admindomain.Money(doc.Totals.Discount),
			Tax:      admindomain.Money(doc.Totals.Tax),
			Total:    admindomain.Money(doc.Totals.Total),
		},
		Adjustments: doc.Adjustments,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func mapOrderToDocument(order *admindomain.Order) OrderDocument {
	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := order.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	lines := make([]OrderLineDocument, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineDocument{
			PriceItemID: line.PriceItemID,
			Concept:     line.Concept,
			UnitPrice:   line.UnitPrice.Int(),
			Quantity:    line.Quantity,
		})
	}

	return OrderDocument{
		Folio:           order.Folio,
		DiagnosticID:    order.DiagnosticID,
		ClientName:      order.ClientName,
		ClientEmail:     order.ClientEmail.String(),
		Lines:           lines,
		DiscountPercent: order.DiscountPercent.Float64(),
		TaxPercent:      order.TaxPercent.Float64(),
		Status:          string(order.Status),
		LegalTemplateID: order.LegalTemplateID,
		LegalText:       order.LegalText,
		Notes:           order.Notes,
		Totals: OrderTotalsDocument{
			Subtotal: order.Totals.Subtotal.Int(),
			Discount: order.Totals.Discount.Int(),
			Tax:      order.Totals.Tax.Int(),
			Total:    order.Totals.Total.Int(),
		},
		Adjustments: order.Adjustments,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
