package handler

import (
	"net/http"

	"magicpill/internal/portal/model"
	"magicpill/internal/portal/service"
)

// httpError maps service errors to HTTP status and the error envelope used by
// the admin and drug routes.
func httpError(err error) (int, interface{}) {
	var code string
	var msg string
	var status int

	switch err {
	case service.ErrAdminNotFound:
		status = http.StatusNotFound
		code = "not_found"
		msg = "Admin not found"
	case service.ErrCompanyNotFound:
		status = http.StatusNotFound
		code = "not_found"
		msg = "Insurance company not found"
	case service.ErrDrugNotFound:
		status = http.StatusNotFound
		code = "not_found"
		msg = "Drug not found"
	case service.ErrDuplicate:
		status = http.StatusConflict
		code = "conflict"
		msg = "Record already exists"
	case service.ErrCompanyNotAssociated:
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Insurance company not associated with admin"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

func validationError(err error) model.ErrorResponse {
	if detail, ok := err.(*model.ErrorDetail); ok {
		return model.ErrorResponse{Error: *detail}
	}
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}

// resultsError wraps an error in the legacy {results: [...]} envelope used by
// the user, company and plan routes.
func resultsError(kind, message string) model.BatchResponse {
	return model.BatchResponse{
		Results: []model.BatchResult{{Error: kind, Message: message}},
	}
}

// resultsStatus picks the HTTP status for a results-enveloped service error.
func resultsStatus(err error) (int, model.BatchResponse) {
	switch err {
	case service.ErrUserNotFound:
		return http.StatusNotFound, resultsError(model.BatchErrNotFound, "User not found.")
	case service.ErrCompanyNotFound:
		return http.StatusNotFound, resultsError(model.BatchErrNotFound, "Insurance company not found.")
	case service.ErrPlanNotFound:
		return http.StatusNotFound, resultsError(model.BatchErrNotFound, "Magic Pill Plan not found.")
	case service.ErrDuplicate:
		return http.StatusInternalServerError, resultsError(model.BatchErrIntegrity, "A database integrity error occurred.")
	default:
		return http.StatusInternalServerError, resultsError(model.BatchErrDatabase, "A database error occurred.")
	}
}
