package model

import "math"

// Actions accepted by the bulk user endpoint.
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionToggle = "toggle"
)

// Batch result error kinds. These are part of the wire contract.
const (
	BatchErrBadRequest    = "Bad Request"
	BatchErrNotFound      = "Not Found"
	BatchErrUserNotFound  = "User Not Found"
	BatchErrUnknownAction = "Unknown Action"
	BatchErrDatabase      = "Database Error"
	BatchErrIntegrity     = "Database Integrity Error"
)

// BatchOperation is one tagged entry of a bulk request. The payload is kept
// untyped so that per-field presence and type errors can be reported without
// rejecting the whole request.
type BatchOperation struct {
	Action   string                 `json:"action"`
	UserData map[string]interface{} `json:"user_data"`
}

// BatchResult is the outcome for exactly one BatchOperation.
type BatchResult struct {
	Success  bool   `json:"success,omitempty"`
	Error    string `json:"error,omitempty"`
	Message  string `json:"message"`
	User     *User  `json:"user,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

type fieldSpec struct {
	name string
	kind string
}

// Required field set for operations carrying a full record. Order matters:
// the first violation in this order is the one reported.
var requiredUserFields = []fieldSpec{
	{"username", "string"},
	{"email", "string"},
	{"firstName", "string"},
	{"lastName", "string"},
	{"phone", "string"},
	{"address", "string"},
	{"dob", "string"},
	{"companyId", "integer"},
	{"planId", "integer"},
	{"isActive", "boolean"},
	{"isDependent", "boolean"},
}

// ValidateUserPayload checks presence and semantic type of every required
// field. It returns nil when the payload is valid.
func ValidateUserPayload(data map[string]interface{}) *BatchResult {
	for _, f := range requiredUserFields {
		v, ok := data[f.name]
		if !ok || v == nil {
			return &BatchResult{
				Error:   BatchErrBadRequest,
				Message: "'" + f.name + "' is required.",
			}
		}
		if !isKind(v, f.kind) {
			return &BatchResult{
				Error:   BatchErrBadRequest,
				Message: "'" + f.name + "' should be of type " + f.kind + ".",
			}
		}
	}
	return nil
}

// isKind checks a decoded JSON value against a semantic type. encoding/json
// decodes every number to float64, so integers are floats with no fraction.
func isKind(v interface{}, kind string) bool {
	switch kind {
	case "string":
		_, ok := v.(string)
		return ok
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "integer":
		f, ok := v.(float64)
		return ok && f == math.Trunc(f)
	}
	return false
}

// PayloadUserID extracts the target identifier for update/toggle operations.
func PayloadUserID(data map[string]interface{}) (int, bool) {
	f, ok := data["userId"].(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// UserFromPayload maps a validated payload onto a User record. Only
// allow-listed keys are read; anything else in the payload is dropped.
func UserFromPayload(data map[string]interface{}) *User {
	u := &User{
		Username:    payloadString(data, "username"),
		Email:       payloadString(data, "email"),
		FirstName:   payloadString(data, "firstName"),
		LastName:    payloadString(data, "lastName"),
		Phone:       payloadString(data, "phone"),
		Address:     payloadString(data, "address"),
		DOB:         payloadString(data, "dob"),
		CompanyID:   PayloadInt(data, "companyId"),
		PlanID:      PayloadInt(data, "planId"),
		IsActive:    payloadBool(data, "isActive"),
		IsDependent: payloadBool(data, "isDependent"),
	}
	// Optional fields
	u.Age = PayloadInt(data, "age")
	u.Company = payloadString(data, "company")
	return u
}

// UserUpdateFields builds the allow-listed persistence field set for a bulk
// update from a validated payload.
func UserUpdateFields(data map[string]interface{}) map[string]interface{} {
	u := UserFromPayload(data)
	fields := map[string]interface{}{
		"username":     u.Username,
		"email":        u.Email,
		"first_name":   u.FirstName,
		"last_name":    u.LastName,
		"phone":        u.Phone,
		"address":      u.Address,
		"dob":          u.DOB,
		"company_id":   u.CompanyID,
		"plan_id":      u.PlanID,
		"is_active":    u.IsActive,
		"is_dependent": u.IsDependent,
	}
	if u.Age != 0 {
		fields["age"] = u.Age
	}
	if u.Company != "" {
		fields["company"] = u.Company
	}
	return fields
}

// ToggleFields is the persistence field set for a grouped toggle write.
func ToggleFields(active bool) map[string]interface{} {
	return map[string]interface{}{"is_active": active}
}

func payloadString(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}

func payloadBool(data map[string]interface{}, key string) bool {
	b, _ := data[key].(bool)
	return b
}

// PayloadInt reads an integral JSON number; missing or non-numeric values
// yield zero.
func PayloadInt(data map[string]interface{}, key string) int {
	f, ok := data[key].(float64)
	if !ok {
		return 0
	}
	return int(f)
}
