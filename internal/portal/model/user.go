package model

// User is an enrolled member record. JSON uses the canonical camelCase
// convention; BSON field names are snake_case.
type User struct {
	UserID      int    `json:"userId" bson:"user_id"`
	Username    string `json:"username" bson:"username"`
	Email       string `json:"email" bson:"email"`
	FirstName   string `json:"firstName" bson:"first_name"`
	LastName    string `json:"lastName" bson:"last_name"`
	Phone       string `json:"phone" bson:"phone"`
	Address     string `json:"address" bson:"address"`
	DOB         string `json:"dob" bson:"dob"`
	Age         int    `json:"age,omitempty" bson:"age,omitempty"`
	Company     string `json:"company,omitempty" bson:"company,omitempty"`
	CompanyID   int    `json:"companyId" bson:"company_id"`
	PlanID      int    `json:"planId" bson:"plan_id"`
	IsActive    bool   `json:"isActive" bson:"is_active"`
	IsDependent bool   `json:"isDependent" bson:"is_dependent"`
}

// UserDetail is the full single-user read shape with the referenced company
// and plan embedded.
type UserDetail struct {
	User
	InsuranceCompany *InsuranceCompany `json:"insuranceCompany,omitempty"`
	MagicPillPlan    *MagicPillPlan    `json:"magicPillPlan,omitempty"`
}

// UserUpdate is one entry of a grouped update write: a target identifier plus
// an allow-listed set of persistence fields.
type UserUpdate struct {
	UserID int
	Fields map[string]interface{}
}

type AddUserReq struct {
	Username    string `json:"username" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,max=30"`
	Address     string `json:"address" validate:"required"`
	DOB         string `json:"dob" validate:"required"`
	Age         int    `json:"age" validate:"omitempty,gte=0"`
	Company     string `json:"company" validate:"omitempty,max=200"`
	CompanyID   int    `json:"companyId" validate:"required"`
	PlanID      int    `json:"planId" validate:"required"`
	IsActive    *bool  `json:"isActive" validate:"required"`
	IsDependent *bool  `json:"isDependent" validate:"required"`
}

func (r *AddUserReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

func (r *AddUserReq) ToUser() *User {
	return &User{
		Username:    r.Username,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		Address:     r.Address,
		DOB:         r.DOB,
		Age:         r.Age,
		Company:     r.Company,
		CompanyID:   r.CompanyID,
		PlanID:      r.PlanID,
		IsActive:    *r.IsActive,
		IsDependent: *r.IsDependent,
	}
}

// UpdateUserReq carries a partial update; only non-nil fields are applied.
type UpdateUserReq struct {
	Username    *string `json:"username" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	FirstName   *string `json:"firstName" validate:"omitempty,max=100"`
	LastName    *string `json:"lastName" validate:"omitempty,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Address     *string `json:"address"`
	DOB         *string `json:"dob"`
	Age         *int    `json:"age" validate:"omitempty,gte=0"`
	Company     *string `json:"company" validate:"omitempty,max=200"`
	CompanyID   *int    `json:"companyId"`
	PlanID      *int    `json:"planId"`
	IsActive    *bool   `json:"isActive"`
	IsDependent *bool   `json:"isDependent"`
}

func (r *UpdateUserReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// Fields returns the allow-listed persistence field set for the update.
func (r *UpdateUserReq) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "username", r.Username)
	setIf(fields, "email", r.Email)
	setIf(fields, "first_name", r.FirstName)
	setIf(fields, "last_name", r.LastName)
	setIf(fields, "phone", r.Phone)
	setIf(fields, "address", r.Address)
	setIf(fields, "dob", r.DOB)
	setIf(fields, "age", r.Age)
	setIf(fields, "company", r.Company)
	setIf(fields, "company_id", r.CompanyID)
	setIf(fields, "plan_id", r.PlanID)
	setIf(fields, "is_active", r.IsActive)
	setIf(fields, "is_dependent", r.IsDependent)
	return fields
}

func setIf[T any](fields map[string]interface{}, key string, v *T) {
	if v != nil {
		fields[key] = *v
	}
}
