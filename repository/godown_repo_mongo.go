package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ricemill/models"
)

type MongoGodownRepo struct {
	DB *mongo.Client
}

func NewMongoGodownRepo(db *mongo.Client) *MongoGodownRepo {
	return &MongoGodownRepo{DB: db}
}

func (r *MongoGodownRepo) FindByName(name string) (*models.UnloadingGodown, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	g := &models.UnloadingGodown{}
	err := db.Collection("unloading_godowns").
		FindOne(ctx, bson.M{"name": name}).Decode(g)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return g, nil
}

func (r *MongoGodownRepo) Insert(name string) (*models.UnloadingGodown, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	id, err := nextSeq(ctx, db, "unloading_godowns")
	if err != nil {
		return nil, err
	}

	g := &models.UnloadingGodown{ID: id, Name: name}
	if _, err := db.Collection("unloading_godowns").InsertOne(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *MongoGodownRepo) ListAll() ([]models.UnloadingGodown, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := db.Collection("unloading_godowns").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var godowns []models.UnloadingGodown
	for cur.Next(ctx) {
		var g models.UnloadingGodown
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		godowns = append(godowns, g)
	}
	return godowns, cur.Err()
}
