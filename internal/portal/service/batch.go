package service

import (
	"context"
	"errors"
	"fmt"

	"magicpill/internal/portal/model"
	"magicpill/internal/portal/repository"
	"magicpill/internal/portal/util"
)

// Bucket entries remember the input position so results can be reassembled in
// input order after the grouped phases run.
type insertItem struct {
	idx  int
	user *model.User
}

type updateItem struct {
	idx    int
	userID int
	user   *model.User
	fields map[string]interface{}
}

type toggleItem struct {
	idx    int
	userID int
	active bool
}

// ProcessUserBatch validates and classifies every operation, then executes
// the three grouped phases in fixed order: insert, update, toggle. The whole
// batch runs on one store session; each phase is its own transaction, so a
// failed phase never blocks the others.
//
// Toggle negates the state persisted at classification time. When several
// operations in one batch target the same user, the later operation in input
// order wins within a phase (the grouped write is ordered), and the toggle
// phase wins across phases because it runs last.
func (s *Service) ProcessUserBatch(ctx context.Context, ops []model.BatchOperation) []model.BatchResult {
	results := make([]model.BatchResult, len(ops))

	err := s.repo.WithSession(ctx, func(ctx context.Context) error {
		inserts, updates, toggles := s.classify(ctx, ops, results)
		s.runInsertPhase(ctx, inserts, results)
		s.runUpdatePhase(ctx, updates, results)
		s.runTogglePhase(ctx, toggles, results)
		return nil
	})
	if err != nil {
		util.GetLogger().Error("batch session failed", "error", err)
		for i := range results {
			if results[i] == (model.BatchResult{}) {
				results[i] = model.BatchResult{
					Error:   model.BatchErrDatabase,
					Message: "A database error occurred.",
				}
			}
		}
	}

	return results
}

func (s *Service) classify(ctx context.Context, ops []model.BatchOperation, results []model.BatchResult) ([]insertItem, []updateItem, []toggleItem) {
	var inserts []insertItem
	var updates []updateItem
	var toggles []toggleItem

	for i, op := range ops {
		switch op.Action {
		case model.ActionAdd:
			res, u := s.classifyAdd(ctx, op.UserData)
			if res != nil {
				results[i] = *res
				continue
			}
			inserts = append(inserts, insertItem{idx: i, user: u})

		case model.ActionUpdate:
			res, item := s.classifyUpdate(ctx, op.UserData)
			if res != nil {
				results[i] = *res
				continue
			}
			item.idx = i
			updates = append(updates, item)

		case model.ActionToggle:
			res, item := s.classifyToggle(ctx, op.UserData)
			if res != nil {
				results[i] = *res
				continue
			}
			item.idx = i
			toggles = append(toggles, item)

		default:
			results[i] = model.BatchResult{
				Error:   model.BatchErrUnknownAction,
				Message: fmt.Sprintf("Unknown action received: %s", op.Action),
			}
		}
	}

	return inserts, updates, toggles
}

func (s *Service) classifyAdd(ctx context.Context, data map[string]interface{}) (*model.BatchResult, *model.User) {
	if res := model.ValidateUserPayload(data); res != nil {
		return res, nil
	}
	if res := s.checkReferences(ctx, data); res != nil {
		return res, nil
	}

	u := model.UserFromPayload(data)
	id, err := s.repo.NextUserID(ctx)
	if err != nil {
		return databaseResult(err), nil
	}
	u.UserID = id
	return nil, u
}

func (s *Service) classifyUpdate(ctx context.Context, data map[string]interface{}) (*model.BatchResult, updateItem) {
	userID, ok := model.PayloadUserID(data)
	if !ok {
		return missingUserIDResult(), updateItem{}
	}
	if res := model.ValidateUserPayload(data); res != nil {
		return res, updateItem{}
	}
	if res := s.checkReferences(ctx, data); res != nil {
		return res, updateItem{}
	}
	if res := s.checkUserExists(ctx, userID); res != nil {
		return res, updateItem{}
	}

	u := model.UserFromPayload(data)
	u.UserID = userID
	return nil, updateItem{
		userID: userID,
		user:   u,
		fields: model.UserUpdateFields(data),
	}
}

func (s *Service) classifyToggle(ctx context.Context, data map[string]interface{}) (*model.BatchResult, toggleItem) {
	userID, ok := model.PayloadUserID(data)
	if !ok {
		return missingUserIDResult(), toggleItem{}
	}

	u, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return userNotFoundResult(userID), toggleItem{}
	}
	if err != nil {
		return databaseResult(err), toggleItem{}
	}

	return nil, toggleItem{userID: userID, active: !u.IsActive}
}

// checkReferences verifies the foreign entities exist: plan first, then
// company.
func (s *Service) checkReferences(ctx context.Context, data map[string]interface{}) *model.BatchResult {
	ok, err := s.repo.PlanExists(ctx, model.PayloadInt(data, "planId"))
	if err != nil {
		return databaseResult(err)
	}
	if !ok {
		return &model.BatchResult{
			Error:   model.BatchErrNotFound,
			Message: "Magic Pill Plan not found.",
		}
	}

	ok, err = s.repo.CompanyExists(ctx, model.PayloadInt(data, "companyId"))
	if err != nil {
		return databaseResult(err)
	}
	if !ok {
		return &model.BatchResult{
			Error:   model.BatchErrNotFound,
			Message: "Insurance company not found.",
		}
	}
	return nil
}

func (s *Service) checkUserExists(ctx context.Context, userID int) *model.BatchResult {
	_, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return userNotFoundResult(userID)
	}
	if err != nil {
		return databaseResult(err)
	}
	return nil
}

func (s *Service) runInsertPhase(ctx context.Context, items []insertItem, results []model.BatchResult) {
	if len(items) == 0 {
		return
	}
	users := make([]*model.User, len(items))
	for i, it := range items {
		users[i] = it.user
	}
	if err := s.repo.BulkInsertUsers(ctx, users); err != nil {
		idxs := make([]int, len(items))
		for i, it := range items {
			idxs[i] = it.idx
		}
		s.failPhase("insert", idxs, results, err)
		return
	}
	for _, it := range items {
		results[it.idx] = model.BatchResult{
			Success: true,
			Message: "User added successfully",
			User:    it.user,
		}
	}
}

func (s *Service) runUpdatePhase(ctx context.Context, items []updateItem, results []model.BatchResult) {
	if len(items) == 0 {
		return
	}
	writes := make([]model.UserUpdate, len(items))
	for i, it := range items {
		writes[i] = model.UserUpdate{UserID: it.userID, Fields: it.fields}
	}
	if err := s.repo.BulkUpdateUsers(ctx, writes); err != nil {
		idxs := make([]int, len(items))
		for i, it := range items {
			idxs[i] = it.idx
		}
		s.failPhase("update", idxs, results, err)
		return
	}
	for _, it := range items {
		results[it.idx] = model.BatchResult{
			Success: true,
			Message: "User updated successfully",
			User:    it.user,
		}
	}
}

func (s *Service) runTogglePhase(ctx context.Context, items []toggleItem, results []model.BatchResult) {
	if len(items) == 0 {
		return
	}
	writes := make([]model.UserUpdate, len(items))
	for i, it := range items {
		writes[i] = model.UserUpdate{UserID: it.userID, Fields: model.ToggleFields(it.active)}
	}
	if err := s.repo.BulkUpdateUsers(ctx, writes); err != nil {
		idxs := make([]int, len(items))
		for i, it := range items {
			idxs[i] = it.idx
		}
		s.failPhase("toggle", idxs, results, err)
		return
	}
	for _, it := range items {
		active := it.active
		results[it.idx] = model.BatchResult{
			Success:  true,
			Message:  "User toggled successfully",
			IsActive: &active,
		}
	}
}

// failPhase marks every member of a rolled-back bucket. Full detail is logged
// here; the caller only sees the generic classification.
func (s *Service) failPhase(phase string, idxs []int, results []model.BatchResult, err error) {
	util.GetLogger().Error("bulk phase failed", "phase", phase, "error", err)

	res := model.BatchResult{
		Error:   model.BatchErrDatabase,
		Message: "A database error occurred.",
	}
	if errors.Is(err, repository.ErrDuplicate) {
		res = model.BatchResult{
			Error:   model.BatchErrIntegrity,
			Message: "A database integrity error occurred.",
		}
	}
	for _, i := range idxs {
		results[i] = res
	}
}

func missingUserIDResult() *model.BatchResult {
	return &model.BatchResult{
		Error:   model.BatchErrBadRequest,
		Message: "'userId' is required for update and toggle operations.",
	}
}

func userNotFoundResult(userID int) *model.BatchResult {
	return &model.BatchResult{
		Error:   model.BatchErrUserNotFound,
		Message: fmt.Sprintf("User with ID %d not found.", userID),
	}
}

func databaseResult(err error) *model.BatchResult {
	util.GetLogger().Error("batch classification failed", "error", err)
	return &model.BatchResult{
		Error:   model.BatchErrDatabase,
		Message: "A database error occurred.",
	}
}
