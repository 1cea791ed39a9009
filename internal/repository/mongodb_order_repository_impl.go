package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartraw-backend/internal/domain"
	"smartraw-backend/pkg/errs"
)

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, errs.ErrNotFound
	}

	err = r.db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return order, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return
	}

	return order, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	return r.findOrders(ctx, bson.M{"user": userID})
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]domain.Order, error) {
	return r.findOrders(ctx, bson.M{"seller": sellerID})
}

func (r *MongoDBOrderRepositoryImpl) findOrders(ctx context.Context, filter bson.M) (data []domain.Order, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "ordered_at", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "findOrders").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "findOrders").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) CountOrdersBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error) {
	count, err := r.db.Collection("orders").CountDocuments(ctx, bson.M{"seller": sellerID})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOrdersBySeller").Msg("")
		return 0, err
	}

	return count, nil
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	// status is the only field that ever changes after creation
	result, err := r.db.Collection("orders").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
