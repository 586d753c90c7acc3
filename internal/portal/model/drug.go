package model

// Drug is one formulary entry.
type Drug struct {
	DrugID           int     `json:"drugId" bson:"drug_id"`
	DrugName         string  `json:"drugName" bson:"drug_name"`
	ManufacturerName string  `json:"manufacturerName" bson:"manufacturer_name"`
	BrandName        string  `json:"brandName" bson:"brand_name"`
	Cost             float64 `json:"cost" bson:"cost"`
	IsUrgent         bool    `json:"isUrgent" bson:"is_urgent"`
	IsHighCost       bool    `json:"isHighCost" bson:"is_high_cost"`
	IsFree           bool    `json:"isFree" bson:"is_free"`
	PlanType         string  `json:"planType" bson:"plan_type"`
	DrugForm         string  `json:"drugForm" bson:"drug_form"`
	Dosage           string  `json:"dosage" bson:"dosage"`
	MaxSupply30      int     `json:"maxSupply30" bson:"max_supply_30"`
	MaxSupply90      int     `json:"maxSupply90" bson:"max_supply_90"`
}

type CreateDrugReq struct {
	DrugName         string  `json:"drugName" validate:"required,max=200"`
	ManufacturerName string  `json:"manufacturerName" validate:"required,max=200"`
	BrandName        string  `json:"brandName" validate:"omitempty,max=200"`
	Cost             float64 `json:"cost" validate:"gte=0"`
	IsUrgent         bool    `json:"isUrgent"`
	IsHighCost       bool    `json:"isHighCost"`
	IsFree           bool    `json:"isFree"`
	PlanType         string  `json:"planType" validate:"omitempty,max=50"`
	DrugForm         string  `json:"drugForm" validate:"omitempty,max=100"`
	Dosage           string  `json:"dosage" validate:"omitempty,max=100"`
	MaxSupply30      int     `json:"maxSupply30" validate:"gte=0"`
	MaxSupply90      int     `json:"maxSupply90" validate:"gte=0"`
}

func (r *CreateDrugReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

func (r *CreateDrugReq) ToDrug() *Drug {
	return &Drug{
		DrugName:         r.DrugName,
		ManufacturerName: r.ManufacturerName,
		BrandName:        r.BrandName,
		Cost:             r.Cost,
		IsUrgent:         r.IsUrgent,
		IsHighCost:       r.IsHighCost,
		IsFree:           r.IsFree,
		PlanType:         r.PlanType,
		DrugForm:         r.DrugForm,
		Dosage:           r.Dosage,
		MaxSupply30:      r.MaxSupply30,
		MaxSupply90:      r.MaxSupply90,
	}
}
