package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"smartraw-backend/internal/domain"
	"smartraw-backend/pkg/errs"
)

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	filter := bson.M{"email": email}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, errs.ErrNotFound
	}

	filter := bson.M{"_id": userID}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		return
	}

	return user, nil
}

// Cart mutations are single update operations on the user document, so
// concurrent requests for the same user cannot lose each other's writes.

func (r *MongoDBUserRepositoryImpl) IncrementCartItem(ctx context.Context, userID, productID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": userID, "cart.product": productID}
	update := bson.M{"$inc": bson.M{"cart.$.quantity": 1}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IncrementCartItem").Msg("")
		return false, err
	}

	return result.MatchedCount > 0, nil
}

func (r *MongoDBUserRepositoryImpl) DecrementCartItem(ctx context.Context, userID, productID primitive.ObjectID) (bool, error) {
	// only entries above quantity 1 match; reaching 0 is handled by a pull
	filter := bson.M{
		"_id":  userID,
		"cart": bson.M{"$elemMatch": bson.M{"product": productID, "quantity": bson.M{"$gt": 1}}},
	}
	update := bson.M{"$inc": bson.M{"cart.$.quantity": -1}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DecrementCartItem").Msg("")
		return false, err
	}

	return result.MatchedCount > 0, nil
}

func (r *MongoDBUserRepositoryImpl) PushCartItem(ctx context.Context, userID primitive.ObjectID, item domain.CartItem) error {
	filter := bson.M{"_id": userID}
	update := bson.M{"$push": bson.M{"cart": item}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PushCartItem").Msg("")
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBUserRepositoryImpl) PullCartItem(ctx context.Context, userID, productID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": userID}
	update := bson.M{"$pull": bson.M{"cart": bson.M{"product": productID}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PullCartItem").Msg("")
		return false, err
	}

	return result.ModifiedCount > 0, nil
}

func (r *MongoDBUserRepositoryImpl) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	filter := bson.M{"_id": userID}
	update := bson.M{"$set": bson.M{"cart": []domain.CartItem{}}}

	_, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ClearCart").Msg("")
		return err
	}

	return nil
}
