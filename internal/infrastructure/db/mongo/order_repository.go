package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

const ordersCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type mongoOrderItem struct {
	PizzaID   string  `bson:"pizza_id"`
	PizzaName string  `bson:"pizza_name"`
	Quantity  int     `bson:"quantity"`
	UnitPrice float64 `bson:"unit_price"`
}

type mongoOrder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Status    string             `bson:"status"`
	Total     float64            `bson:"total"`
	Items     []mongoOrderItem   `bson:"items"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoOrder) toDomain() domain.Order {
	items := make([]domain.OrderItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.OrderItem{
			PizzaID:   it.PizzaID,
			PizzaName: it.PizzaName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return domain.Order{
		ID:        m.ID.Hex(),
		Username:  m.Username,
		Status:    domain.OrderStatus(m.Status),
		Total:     m.Total,
		Items:     items,
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts the order as one document, items included. The single
// write is the atomic unit of work for order placement.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	items := make([]mongoOrderItem, len(order.Items))
	for i, it := range order.Items {
		items[i] = mongoOrderItem{
			PizzaID:   it.PizzaID,
			PizzaName: it.PizzaName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}

	doc := mongoOrder{
		Username:  order.Username,
		Status:    string(order.Status),
		Total:     order.Total,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *order
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListByUsername returns the user's orders sorted by creation time
// descending. Returns an empty slice (not nil) when the user has none.
func (r *OrderRepository) ListByUsername(ctx context.Context, username string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoOrder
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]domain.Order, len(docs))
	for i, d := range docs {
		orders[i] = d.toDomain()
	}
	return orders, nil
}

// EnsureIndexes creates the index backing the per-user history query.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
