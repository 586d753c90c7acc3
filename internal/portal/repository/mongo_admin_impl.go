package repository

import (
	"context"

	"magicpill/internal/portal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) NextAdminID(ctx context.Context) (int, error) {
	return r.nextSequence(ctx, "admin_id")
}

func (r *MongoRepository) ListAdmins(ctx context.Context) ([]*model.Admin, error) {
	opts := options.Find().SetSort(bson.D{{Key: "admin_id", Value: 1}})
	cursor, err := r.Admins.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	admins := []*model.Admin{}
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *MongoRepository) GetAdminByID(ctx context.Context, adminID int) (*model.Admin, error) {
	var a model.Admin
	err := r.Admins.FindOne(ctx, bson.M{"admin_id": adminID}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	err := r.Admins.FindOne(ctx, bson.M{"admin_email": email}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) InsertAdmin(ctx context.Context, a *model.Admin) error {
	_, err := r.Admins.InsertOne(ctx, a)
	return classifyWriteError(err)
}

func (r *MongoRepository) UpdateAdmin(ctx context.Context, adminID int, fields map[string]interface{}) error {
	res, err := r.Admins.UpdateOne(ctx,
		bson.M{"admin_id": adminID},
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

func (r *MongoRepository) DeleteAdmin(ctx context.Context, adminID int) error {
	res, err := r.Admins.DeleteOne(ctx, bson.M{"admin_id": adminID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) AddAdminCompany(ctx context.Context, adminID, companyID int) error {
	res, err := r.Admins.UpdateOne(ctx,
		bson.M{"admin_id": adminID},
		bson.M{"$addToSet": bson.M{"company_ids": companyID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveAdminCompany reports whether the association actually existed.
func (r *MongoRepository) RemoveAdminCompany(ctx context.Context, adminID, companyID int) (bool, error) {
	res, err := r.Admins.UpdateOne(ctx,
		bson.M{"admin_id": adminID},
		bson.M{"$pull": bson.M{"company_ids": companyID}},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}
