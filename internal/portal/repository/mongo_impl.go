package repository

import (
	"context"
	"fmt"

	"magicpill/internal/portal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Users     *mongo.Collection
	Companies *mongo.Collection
	Plans     *mongo.Collection
	Admins    *mongo.Collection
	Drugs     *mongo.Collection
	Counters  *mongo.Collection
	Client    *mongo.Client
}

func NewMongoRepository(db *mongo.Database, cfg *config.Config) *MongoRepository {
	return &MongoRepository{
		Users:     db.Collection(cfg.UsersCollection),
		Companies: db.Collection(cfg.CompaniesCollection),
		Plans:     db.Collection(cfg.PlansCollection),
		Admins:    db.Collection(cfg.AdminsCollection),
		Drugs:     db.Collection(cfg.DrugsCollection),
		Counters:  db.Collection(cfg.CountersCollection),
		Client:    db.Client(),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	idxUserID := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_id"),
	}
	idxUserEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
	}
	idxUserCompany := mongo.IndexModel{
		Keys:    bson.D{{Key: "company_id", Value: 1}},
		Options: options.Index().SetName("idx_user_company"),
	}
	if _, err := r.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{idxUserID, idxUserEmail, idxUserCompany}); err != nil {
		return err
	}

	idxCompanyID := mongo.IndexModel{
		Keys:    bson.D{{Key: "company_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_company_id"),
	}
	if _, err := r.Companies.Indexes().CreateMany(ctx, []mongo.IndexModel{idxCompanyID}); err != nil {
		return err
	}

	idxPlanID := mongo.IndexModel{
		Keys:    bson.D{{Key: "plan_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_plan_id"),
	}
	if _, err := r.Plans.Indexes().CreateMany(ctx, []mongo.IndexModel{idxPlanID}); err != nil {
		return err
	}

	idxAdminID := mongo.IndexModel{
		Keys:    bson.D{{Key: "admin_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_admin_id"),
	}
	idxAdminEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "admin_email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_admin_email"),
	}
	if _, err := r.Admins.Indexes().CreateMany(ctx, []mongo.IndexModel{idxAdminID, idxAdminEmail}); err != nil {
		return err
	}

	idxDrugID := mongo.IndexModel{
		Keys:    bson.D{{Key: "drug_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_drug_id"),
	}
	_, err := r.Drugs.Indexes().CreateMany(ctx, []mongo.IndexModel{idxDrugID})
	return err
}

// WithSession starts one store session and embeds it in the context so every
// repository call inside fn shares it. EndSession runs on every exit path.
func (r *MongoRepository) WithSession(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	return mongo.WithSession(ctx, session, func(sessCtx mongo.SessionContext) error {
		return fn(sessCtx)
	})
}

// inPhaseTxn runs one grouped write as a transaction on the ambient session.
// Without an ambient session the write runs standalone.
func (r *MongoRepository) inPhaseTxn(ctx context.Context, fn func(ctx context.Context) error) error {
	if session := mongo.SessionFromContext(ctx); session != nil {
		_, err := session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
			return nil, fn(sessCtx)
		})
		return classifyWriteError(err)
	}
	return classifyWriteError(fn(ctx))
}

// classifyWriteError maps duplicate-key failures onto ErrDuplicate while
// keeping the driver detail for logging.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func (r *MongoRepository) nextSequence(ctx context.Context, name string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int `bson:"seq"`
	}
	err := r.Counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
