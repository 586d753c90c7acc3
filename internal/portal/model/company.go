package model

type InsuranceCompany struct {
	CompanyID   int    `json:"companyId" bson:"company_id"`
	Name        string `json:"name" bson:"name"`
	PhoneNumber string `json:"phoneNumber" bson:"phone_number"`
}

// CompanyWithUsers is the read shape for GET /company/:companyId.
type CompanyWithUsers struct {
	Company *InsuranceCompany `json:"company"`
	Users   []*User           `json:"users"`
}
