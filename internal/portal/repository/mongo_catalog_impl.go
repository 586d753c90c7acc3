package repository

import (
	"context"

	"magicpill/internal/portal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) ListCompanies(ctx context.Context) ([]*model.InsuranceCompany, error) {
	opts := options.Find().SetSort(bson.D{{Key: "company_id", Value: 1}})
	cursor, err := r.Companies.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	companies := []*model.InsuranceCompany{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *MongoRepository) GetCompanyByID(ctx context.Context, companyID int) (*model.InsuranceCompany, error) {
	var c model.InsuranceCompany
	err := r.Companies.FindOne(ctx, bson.M{"company_id": companyID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoRepository) CompanyExists(ctx context.Context, companyID int) (bool, error) {
	count, err := r.Companies.CountDocuments(ctx, bson.M{"company_id": companyID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoRepository) ListCompaniesByIDs(ctx context.Context, companyIDs []int) ([]*model.InsuranceCompany, error) {
	if len(companyIDs) == 0 {
		return []*model.InsuranceCompany{}, nil
	}
	cursor, err := r.Companies.Find(ctx, bson.M{"company_id": bson.M{"$in": companyIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	companies := []*model.InsuranceCompany{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *MongoRepository) ListPlans(ctx context.Context) ([]*model.MagicPillPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "plan_id", Value: 1}})
	cursor, err := r.Plans.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []*model.MagicPillPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *MongoRepository) GetPlanByID(ctx context.Context, planID int) (*model.MagicPillPlan, error) {
	var p model.MagicPillPlan
	err := r.Plans.FindOne(ctx, bson.M{"plan_id": planID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) PlanExists(ctx context.Context, planID int) (bool, error) {
	count, err := r.Plans.CountDocuments(ctx, bson.M{"plan_id": planID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoRepository) NextDrugID(ctx context.Context) (int, error) {
	return r.nextSequence(ctx, "drug_id")
}

func (r *MongoRepository) ListDrugs(ctx context.Context) ([]*model.Drug, error) {
	opts := options.Find().SetSort(bson.D{{Key: "drug_id", Value: 1}})
	cursor, err := r.Drugs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	drugs := []*model.Drug{}
	if err := cursor.All(ctx, &drugs); err != nil {
		return nil, err
	}
	return drugs, nil
}

func (r *MongoRepository) GetDrugByID(ctx context.Context, drugID int) (*model.Drug, error) {
	var d model.Drug
	err := r.Drugs.FindOne(ctx, bson.M{"drug_id": drugID}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *MongoRepository) InsertDrug(ctx context.Context, d *model.Drug) error {
	_, err := r.Drugs.InsertOne(ctx, d)
	return classifyWriteError(err)
}
