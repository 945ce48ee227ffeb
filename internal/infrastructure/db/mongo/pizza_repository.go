package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

const pizzasCollection = "pizzas"

type PizzaRepository struct {
	coll *mongo.Collection
}

func NewPizzaRepository(db *mongo.Database) *PizzaRepository {
	return &PizzaRepository{coll: db.Collection(pizzasCollection)}
}

type mongoPizza struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Available   bool               `bson:"available"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (m mongoPizza) toDomain() domain.Pizza {
	return domain.Pizza{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		Available:   m.Available,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *PizzaRepository) Create(ctx context.Context, pizza *domain.Pizza) (*domain.Pizza, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPizza{
		Name:        pizza.Name,
		Description: pizza.Description,
		Price:       pizza.Price,
		ImageURL:    pizza.ImageURL,
		Available:   pizza.Available,
		CreatedAt:   pizza.CreatedAt,
		UpdatedAt:   pizza.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPizzaNameTaken
		}
		return nil, fmt.Errorf("insert pizza: %w", err)
	}

	created := *pizza
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PizzaRepository) Update(ctx context.Context, pizza *domain.Pizza) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(pizza.ID)
	if err != nil {
		return domain.ErrPizzaNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        pizza.Name,
		"description": pizza.Description,
		"price":       pizza.Price,
		"image_url":   pizza.ImageURL,
		"available":   pizza.Available,
		"updated_at":  pizza.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update pizza: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPizzaNotFound
	}
	return nil
}

func (r *PizzaRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPizzaNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete pizza: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPizzaNotFound
	}
	return nil
}

func (r *PizzaRepository) FindByID(ctx context.Context, id string) (*domain.Pizza, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPizzaNotFound
	}

	var mp mongoPizza
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPizzaNotFound
		}
		return nil, fmt.Errorf("find pizza: %w", err)
	}

	pizza := mp.toDomain()
	return &pizza, nil
}

func (r *PizzaRepository) ListAvailable(ctx context.Context) ([]domain.Pizza, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"available": true}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoPizza
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode pizzas: %w", err)
	}

	pizzas := make([]domain.Pizza, len(docs))
	for i, d := range docs {
		pizzas[i] = d.toDomain()
	}
	return pizzas, nil
}

// EnsureIndexes creates the unique index on pizza name.
func (r *PizzaRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
