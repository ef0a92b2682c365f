package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ricemill/models"
)

const mongoDatabase = "ricemill"

type MongoSlipRepo struct {
	DB *mongo.Client
}

func NewMongoSlipRepo(db *mongo.Client) *MongoSlipRepo {
	return &MongoSlipRepo{DB: db}
}

// nextSeq increments and returns a named counter. Used for slip ids
// and bill numbers, both monotonic.
func nextSeq(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := db.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (r *MongoSlipRepo) Insert(slip *models.Slip) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	if slip.CreatedAt.IsZero() {
		slip.CreatedAt = time.Now().UTC()
	}

	id, err := nextSeq(ctx, db, "purchase_slips")
	if err != nil {
		return err
	}
	billNo, err := nextSeq(ctx, db, "bill_no")
	if err != nil {
		return err
	}
	slip.ID = id
	slip.BillNo = billNo

	_, err = db.Collection("purchase_slips").InsertOne(ctx, slip)
	return err
}

func (r *MongoSlipRepo) Update(slip *models.Slip) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	_, err := db.Collection("purchase_slips").
		ReplaceOne(ctx, bson.M{"_id": slip.ID}, slip)
	return err
}

func (r *MongoSlipRepo) GetByID(id int64) (*models.Slip, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	slip := &models.Slip{}
	err := db.Collection("purchase_slips").
		FindOne(ctx, bson.M{"_id": id}).Decode(slip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return slip, nil
}

func (r *MongoSlipRepo) ListPage(offset, limit int) ([]*models.SlipSummary, int, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)
	coll := db.Collection("purchase_slips")

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetProjection(bson.M{
			"_id": 1, "bill_no": 1, "date": 1, "party_name": 1,
			"final_weight_kg": 1, "rate_basis": 1, "payable_amount": 1,
			"instalment_1_amount": 1, "instalment_2_amount": 1,
			"instalment_3_amount": 1, "instalment_4_amount": 1,
			"instalment_5_amount": 1,
		})

	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var slips []*models.SlipSummary
	for cur.Next(ctx) {
		s := &models.SlipSummary{}
		if err := cur.Decode(s); err != nil {
			return nil, 0, err
		}
		slips = append(slips, s)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return slips, int(total), nil
}

func (r *MongoSlipRepo) Delete(id int64) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	_, err := db.Collection("purchase_slips").DeleteOne(ctx, bson.M{"_id": id})
	return err
}
