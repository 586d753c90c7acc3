package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodePayload(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestValidateUserPayload(t *testing.T) {
	valid := `{
		"username": "bob", "email": "bob@x.com", "firstName": "Bob",
		"lastName": "Smith", "phone": "555-0100", "address": "1 Main St",
		"dob": "1990-01-01", "companyId": 1, "planId": 2,
		"isActive": true, "isDependent": false
	}`

	t.Run("valid payload passes", func(t *testing.T) {
		assert.Nil(t, ValidateUserPayload(decodePayload(t, valid)))
	})

	t.Run("each missing field is named", func(t *testing.T) {
		for _, field := range []string{"username", "email", "dob", "companyId", "isDependent"} {
			data := decodePayload(t, valid)
			delete(data, field)
			res := ValidateUserPayload(data)
			assert.NotNil(t, res)
			assert.Equal(t, BatchErrBadRequest, res.Error)
			assert.Equal(t, "'"+field+"' is required.", res.Message)
		}
	})

	t.Run("null value counts as missing", func(t *testing.T) {
		data := decodePayload(t, valid)
		data["phone"] = nil
		res := ValidateUserPayload(data)
		assert.NotNil(t, res)
		assert.Equal(t, "'phone' is required.", res.Message)
	})

	t.Run("wrong types name the expected type", func(t *testing.T) {
		cases := []struct {
			field string
			value interface{}
			want  string
		}{
			{"email", float64(42), "'email' should be of type string."},
			{"companyId", "one", "'companyId' should be of type integer."},
			{"companyId", 1.5, "'companyId' should be of type integer."},
			{"isActive", "yes", "'isActive' should be of type boolean."},
		}
		for _, tc := range cases {
			data := decodePayload(t, valid)
			data[tc.field] = tc.value
			res := ValidateUserPayload(data)
			assert.NotNil(t, res)
			assert.Equal(t, tc.want, res.Message)
		}
	})
}

func TestPayloadUserID(t *testing.T) {
	id, ok := PayloadUserID(decodePayload(t, `{"userId": 5}`))
	assert.True(t, ok)
	assert.Equal(t, 5, id)

	_, ok = PayloadUserID(decodePayload(t, `{}`))
	assert.False(t, ok)

	_, ok = PayloadUserID(decodePayload(t, `{"userId": "5"}`))
	assert.False(t, ok)

	_, ok = PayloadUserID(decodePayload(t, `{"userId": 5.5}`))
	assert.False(t, ok)
}

func TestUserFromPayloadAllowList(t *testing.T) {
	data := decodePayload(t, `{
		"username": "bob", "email": "bob@x.com", "firstName": "Bob",
		"lastName": "Smith", "phone": "555-0100", "address": "1 Main St",
		"dob": "1990-01-01", "age": 35, "company": "Acme",
		"companyId": 1, "planId": 2, "isActive": true, "isDependent": false,
		"isAdmin": true, "role": "superuser"
	}`)

	u := UserFromPayload(data)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, 35, u.Age)
	assert.Equal(t, "Acme", u.Company)
	assert.Equal(t, 1, u.CompanyID)
	assert.Equal(t, 2, u.PlanID)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsDependent)

	// Keys outside the allow list never reach persistence.
	fields := UserUpdateFields(data)
	assert.NotContains(t, fields, "isAdmin")
	assert.NotContains(t, fields, "role")
	assert.Equal(t, "bob@x.com", fields["email"])
	assert.Equal(t, true, fields["is_active"])
}

func TestToggleFields(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"is_active": false}, ToggleFields(false))
}
