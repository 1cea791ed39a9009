package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"smartraw-backend/internal/domain"
)

type MongoDBAdminRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewAdminRepository(db *mongo.Database) AdminRepository {
	return &MongoDBAdminRepositoryImpl{db: db}
}

func (r *MongoDBAdminRepositoryImpl) AddAdmin(ctx context.Context, data domain.Admin) (primitive.ObjectID, error) {
	result, err := r.db.Collection("admins").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddAdmin").Msg("")
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBAdminRepositoryImpl) GetAdminByEmail(ctx context.Context, email string) (admin domain.Admin, err error) {
	err = r.db.Collection("admins").FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return admin, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAdminByEmail").Msg("")
		return
	}

	return admin, nil
}
