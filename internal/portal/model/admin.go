package model

// Admin is a portal administrator. CompanyID is the admin's primary company;
// CompanyIDs holds the set of companies the admin manages.
type Admin struct {
	AdminID       int    `json:"adminId" bson:"admin_id"`
	AdminUsername string `json:"adminUsername" bson:"admin_username"`
	AdminEmail    string `json:"adminEmail" bson:"admin_email"`
	CompanyID     int    `json:"companyId" bson:"company_id,omitempty"`
	CompanyIDs    []int  `json:"-" bson:"company_ids,omitempty"`
}

type CreateAdminReq struct {
	AdminUsername string `json:"adminUsername" validate:"required,max=100"`
	AdminEmail    string `json:"adminEmail" validate:"required,email"`
	CompanyID     int    `json:"companyId" validate:"omitempty,gte=1"`
}

func (r *CreateAdminReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type UpdateAdminReq struct {
	AdminUsername *string `json:"adminUsername" validate:"omitempty,max=100"`
	AdminEmail    *string `json:"adminEmail" validate:"omitempty,email"`
	CompanyID     *int    `json:"companyId" validate:"omitempty,gte=1"`
}

func (r *UpdateAdminReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

func (r *UpdateAdminReq) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "admin_username", r.AdminUsername)
	setIf(fields, "admin_email", r.AdminEmail)
	setIf(fields, "company_id", r.CompanyID)
	return fields
}

// AdminCompanyReq is the body for add/remove company association calls.
type AdminCompanyReq struct {
	CompanyID int `json:"companyId" validate:"required,gte=1"`
}

func (r *AdminCompanyReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// AdminLookup is the response for the email existence probe.
type AdminLookup struct {
	Exists    bool   `json:"exists"`
	AdminID   int    `json:"adminId,omitempty"`
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
	CompanyID int    `json:"companyId,omitempty"`
}
