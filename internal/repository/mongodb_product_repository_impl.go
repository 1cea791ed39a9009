package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartraw-backend/internal/domain"
	"smartraw-backend/internal/dto"
	"smartraw-backend/pkg/errs"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrNotFound
	}

	filter := bson.M{"_id": productID}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsBySeller(ctx context.Context, sellerID primitive.ObjectID) (data []domain.Product, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, bson.M{"seller_id": sellerID}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsBySeller").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsBySeller").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProductsBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error) {
	count, err := r.db.Collection("products").CountDocuments(ctx, bson.M{"seller_id": sellerID})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProductsBySeller").Msg("")
		return 0, err
	}

	return count, nil
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, param dto.CatalogFilter, limit int64) (data []domain.Product, total int64, err error) {
	// buyers only ever see products that can still be bought
	filter := bson.M{"stock": bson.M{"$gt": 0}}
	if param.Search != "" {
		filter["name"] = bson.M{"$regex": param.Search, "$options": "i"}
	}

	var sort bson.D
	switch param.Sort {
	case "price_asc":
		sort = bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		sort = bson.D{{Key: "price", Value: -1}}
	case "name_asc":
		sort = bson.D{{Key: "name", Value: 1}}
	case "name_desc":
		sort = bson.D{{Key: "name", Value: -1}}
	default:
		sort = bson.D{{Key: "created_at", Value: -1}}
	}

	page := param.Page
	if page < 1 {
		page = 1
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	total, err = r.db.Collection("products").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, total, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProductStockAndPrice(ctx context.Context, id primitive.ObjectID, stock *int64, price *float64) error {
	set := bson.M{}
	if stock != nil {
		set["stock"] = *stock
	}
	if price != nil {
		set["price"] = *price
	}

	if len(set) == 0 {
		return nil
	}

	result, err := r.db.Collection("products").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProductStockAndPrice").Msg("")
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DecrementProductStock(ctx context.Context, id primitive.ObjectID, quantity int64) (bool, error) {
	// the sufficiency check and the decrement are one conditional update, so
	// two racing orders cannot drive the stock below zero
	filter := bson.M{"_id": id, "stock": bson.M{"$gte": quantity}}
	update := bson.M{"$inc": bson.M{"stock": -quantity}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DecrementProductStock").Msg("")
		return false, err
	}

	return result.MatchedCount > 0, nil
}

func (r *MongoDBProductRepositoryImpl) GetLowStockProducts(ctx context.Context) (data []domain.Product, err error) {
	filter := bson.M{"$expr": bson.M{"$lt": bson.A{"$stock", "$stock_threshold"}}}

	cursor, err := r.db.Collection("products").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetLowStockProducts").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetLowStockProducts").Msg("")
		return
	}

	return data, nil
}
