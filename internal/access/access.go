// Package access gates account mutations and responder linkage behind
// role-based rules. Link operations run their checks in a fixed order
// (existence, then mutual exclusion, then role) because the resulting
// messages are part of the observable contract.
package access

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rmaia/go-wildfire-monitor/internal/apperr"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
)

type Engine struct {
	users        repository.UserRepository
	firefighters repository.FirefighterRepository
	officers     repository.OfficerRepository
}

func NewEngine(users repository.UserRepository, firefighters repository.FirefighterRepository, officers repository.OfficerRepository) *Engine {
	return &Engine{
		users:        users,
		firefighters: firefighters,
		officers:     officers,
	}
}

// UserDraft carries the caller-supplied fields for user creation and update.
// Secret is the plain credential; it is hashed before persisting.
type UserDraft struct {
	Name   string
	Email  string
	Secret string
	Role   string
}

func (e *Engine) AuthorizeUserCreation(executor *models.User) error {
	if executor == nil || executor.Role != models.RoleAdmin {
		return apperr.Forbidden("only ADMIN can create users")
	}
	return nil
}

func (e *Engine) AuthorizeUserUpdate(executor *models.User, targetID string) error {
	if executor == nil {
		return apperr.Forbidden("you do not have permission to update this user")
	}
	if executor.Role != models.RoleAdmin && executor.ID != targetID {
		return apperr.Forbidden("you do not have permission to update this user")
	}
	return nil
}

func (e *Engine) AssertEmailUnique(ctx context.Context, email, excludeID string) error {
	exists, err := e.users.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("error checking email uniqueness: %w", err)
	}
	if exists {
		return apperr.Conflict("email already registered")
	}
	return nil
}

// AssertRoleValid accepts only the freely assignable roles. POLICE and
// FIREFIGHTER come from responder linkage, never from plain creation.
func (e *Engine) AssertRoleValid(role models.Role) error {
	switch role {
	case models.RoleAdmin, models.RoleOperator, models.RoleGuest:
		return nil
	default:
		return apperr.Newf(apperr.KindInvalidArgument, "invalid role: %s", role)
	}
}

func (e *Engine) CreateUser(ctx context.Context, executor *models.User, draft UserDraft) (*models.User, error) {
	if err := e.AuthorizeUserCreation(executor); err != nil {
		return nil, err
	}
	if err := e.AssertEmailUnique(ctx, draft.Email, ""); err != nil {
		return nil, err
	}
	role, ok := models.ParseRole(draft.Role)
	if !ok {
		return nil, apperr.Newf(apperr.KindInvalidArgument, "invalid role: %s", draft.Role)
	}
	if err := e.AssertRoleValid(role); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(draft.Secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing credential: %w", err)
	}

	u := &models.User{
		ID:     uuid.NewString(),
		Name:   draft.Name,
		Email:  draft.Email,
		Secret: string(hash),
		Role:   role,
	}
	if err := e.users.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUser changes name, email and role. The credential secret is never
// touched here; that needs a dedicated flow.
func (e *Engine) UpdateUser(ctx context.Context, executor *models.User, id string, draft UserDraft) (*models.User, error) {
	existing, err := e.users.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("user not found")
	}
	if err := e.AuthorizeUserUpdate(executor, id); err != nil {
		return nil, err
	}
	if draft.Email != existing.Email {
		if err := e.AssertEmailUnique(ctx, draft.Email, id); err != nil {
			return nil, err
		}
	}
	role, ok := models.ParseRole(draft.Role)
	if !ok {
		return nil, apperr.Newf(apperr.KindInvalidArgument, "invalid role: %s", draft.Role)
	}

	existing.Name = draft.Name
	existing.Email = draft.Email
	existing.Role = role

	if err := e.users.SaveUser(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (e *Engine) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := e.users.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

func (e *Engine) ListUsers(ctx context.Context) ([]models.User, error) {
	return e.users.ListUsers(ctx)
}

func (e *Engine) DeleteUser(ctx context.Context, executor *models.User, id string) error {
	if executor == nil || executor.Role != models.RoleAdmin {
		return apperr.Forbidden("only ADMIN can delete users")
	}
	existing, err := e.users.UserByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("user not found")
	}
	return e.users.DeleteUser(ctx, id)
}

// OfficerDraft and FirefighterDraft carry the profile fields for linkage.
type OfficerDraft struct {
	Name        string
	BadgeNumber string
	Phone       string
}

type FirefighterDraft struct {
	Name  string
	Shift string
	Phone string
}

// LinkAsOfficer attaches a user to a new officer profile. The user must
// exist, must not already hold a firefighter profile, and must carry the
// POLICE role.
func (e *Engine) LinkAsOfficer(ctx context.Context, userID string, draft OfficerDraft) (*models.Officer, error) {
	u, err := e.users.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	linked, err := e.firefighters.FirefighterByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if linked != nil {
		return nil, apperr.Conflict("user already linked as firefighter")
	}

	if u.Role != models.RolePolice {
		return nil, apperr.InvalidArgument("user must have POLICE role")
	}

	taken, err := e.officers.ExistsByBadgeNumber(ctx, draft.BadgeNumber, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("badge number already registered")
	}

	o := &models.Officer{
		ID:          uuid.NewString(),
		UserID:      &u.ID,
		Name:        draft.Name,
		BadgeNumber: draft.BadgeNumber,
		Phone:       draft.Phone,
	}
	if err := e.officers.SaveOfficer(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// LinkAsFirefighter is the mirror image: no existing officer profile, and the
// FIREFIGHTER role required.
func (e *Engine) LinkAsFirefighter(ctx context.Context, userID string, draft FirefighterDraft) (*models.Firefighter, error) {
	u, err := e.users.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	linked, err := e.officers.OfficerByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if linked != nil {
		return nil, apperr.Conflict("user already linked as officer")
	}

	if u.Role != models.RoleFirefighter {
		return nil, apperr.InvalidArgument("user must have FIREFIGHTER role")
	}

	f := &models.Firefighter{
		ID:     uuid.NewString(),
		UserID: &u.ID,
		Name:   draft.Name,
		Shift:  draft.Shift,
		Phone:  draft.Phone,
	}
	if err := e.firefighters.SaveFirefighter(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
