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

type MongoDBSellerRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewSellerRepository(db *mongo.Database) SellerRepository {
	return &MongoDBSellerRepositoryImpl{db: db}
}

func (r *MongoDBSellerRepositoryImpl) AddSeller(ctx context.Context, data domain.Seller) (primitive.ObjectID, error) {
	result, err := r.db.Collection("sellers").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddSeller").Msg("")
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBSellerRepositoryImpl) GetSellerByEmail(ctx context.Context, email string) (seller domain.Seller, err error) {
	filter := bson.M{"email": email}

	err = r.db.Collection("sellers").FindOne(ctx, filter).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return seller, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSellerByEmail").Msg("")
		return
	}

	return seller, nil
}

func (r *MongoDBSellerRepositoryImpl) GetSellerByID(ctx context.Context, id string) (seller domain.Seller, err error) {
	sellerID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return seller, errs.ErrNotFound
	}

	filter := bson.M{"_id": sellerID}

	err = r.db.Collection("sellers").FindOne(ctx, filter).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return seller, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSellerByID").Msg("")
		return
	}

	return seller, nil
}

func (r *MongoDBSellerRepositoryImpl) GetSellers(ctx context.Context) (data []domain.Seller, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("sellers").Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSellers").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSellers").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBSellerRepositoryImpl) SetSellerVerified(ctx context.Context, id string) (seller domain.Seller, err error) {
	sellerID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return seller, errs.ErrNotFound
	}

	filter := bson.M{"_id": sellerID}
	update := bson.M{"$set": bson.M{"verified": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection("sellers").FindOneAndUpdate(ctx, filter, update, opts).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return seller, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "SetSellerVerified").Msg("")
		return
	}

	return seller, nil
}

func (r *MongoDBSellerRepositoryImpl) DeleteSeller(ctx context.Context, id string) error {
	sellerID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	result, err := r.db.Collection("sellers").DeleteOne(ctx, bson.M{"_id": sellerID})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteSeller").Msg("")
		return err
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
