package repository

import (
	"context"

	"magicpill/internal/portal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) NextUserID(ctx context.Context) (int, error) {
	return r.nextSequence(ctx, "user_id")
}

func (r *MongoRepository) GetUserByID(ctx context.Context, userID int) (*model.User, error) {
	var u model.User
	err := r.Users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepository) ListUsersByCompany(ctx context.Context, companyID int) ([]*model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "user_id", Value: 1}})
	cursor, err := r.Users.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []*model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoRepository) InsertUser(ctx context.Context, u *model.User) error {
	_, err := r.Users.InsertOne(ctx, u)
	return classifyWriteError(err)
}

func (r *MongoRepository) UpdateUser(ctx context.Context, userID int, fields map[string]interface{}) error {
	res, err := r.Users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return classifyWriteError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkInsertUsers applies the whole batch or nothing. InsertMany is ordered
// and runs in a per-phase transaction when a session is ambient.
func (r *MongoRepository) BulkInsertUsers(ctx context.Context, users []*model.User) error {
	docs := make([]interface{}, 0, len(users))
	for _, u := range users {
		docs = append(docs, u)
	}
	return r.inPhaseTxn(ctx, func(ctx context.Context) error {
		_, err := r.Users.InsertMany(ctx, docs)
		return err
	})
}

// BulkUpdateUsers applies every keyed update or none. The write is ordered,
// so for duplicate keys the later entry wins.
func (r *MongoRepository) BulkUpdateUsers(ctx context.Context, updates []model.UserUpdate) error {
	writeModels := make([]mongo.WriteModel, 0, len(updates))
	for _, u := range updates {
		writeModels = append(writeModels, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"user_id": u.UserID}).
			SetUpdate(bson.M{"$set": u.Fields}))
	}
	return r.inPhaseTxn(ctx, func(ctx context.Context) error {
		opts := options.BulkWrite().SetOrdered(true)
		_, err := r.Users.BulkWrite(ctx, writeModels, opts)
		return err
	})
}
