// Package responder manages firefighter and officer profiles: field
// requirements, badge-number uniqueness and user-link validation.
package responder

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rmaia/go-wildfire-monitor/internal/apperr"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
)

type Service struct {
	firefighters repository.FirefighterRepository
	officers     repository.OfficerRepository
	users        repository.UserRepository
}

func NewService(firefighters repository.FirefighterRepository, officers repository.OfficerRepository, users repository.UserRepository) *Service {
	return &Service{
		firefighters: firefighters,
		officers:     officers,
		users:        users,
	}
}

type FirefighterDraft struct {
	UserID *string
	Name   string
	Shift  string
	Phone  string
}

type OfficerDraft struct {
	UserID      *string
	Name        string
	BadgeNumber string
	Phone       string
}

// resolveLinkedUser validates an optional user link: the user must exist and
// carry the given role.
func (s *Service) resolveLinkedUser(ctx context.Context, userID *string, role models.Role) (*string, error) {
	if userID == nil {
		return nil, nil
	}
	u, err := s.users.UserByID(ctx, *userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if u.Role != role {
		return nil, apperr.Newf(apperr.KindInvalidArgument, "user must have %s role", role)
	}
	return &u.ID, nil
}

// Firefighters

func (s *Service) CreateFirefighter(ctx context.Context, d FirefighterDraft) (*models.Firefighter, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, apperr.InvalidArgument("firefighter name is required")
	}
	if strings.TrimSpace(d.Shift) == "" {
		return nil, apperr.InvalidArgument("firefighter shift is required")
	}
	userID, err := s.resolveLinkedUser(ctx, d.UserID, models.RoleFirefighter)
	if err != nil {
		return nil, err
	}

	f := &models.Firefighter{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   d.Name,
		Shift:  d.Shift,
		Phone:  d.Phone,
	}
	if err := s.firefighters.SaveFirefighter(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) UpdateFirefighter(ctx context.Context, id string, d FirefighterDraft) (*models.Firefighter, error) {
	existing, err := s.firefighters.FirefighterByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("firefighter not found")
	}
	if strings.TrimSpace(d.Name) == "" {
		return nil, apperr.InvalidArgument("firefighter name is required")
	}
	if strings.TrimSpace(d.Shift) == "" {
		return nil, apperr.InvalidArgument("firefighter shift is required")
	}
	userID, err := s.resolveLinkedUser(ctx, d.UserID, models.RoleFirefighter)
	if err != nil {
		return nil, err
	}

	existing.Name = d.Name
	existing.Shift = d.Shift
	existing.Phone = d.Phone
	existing.UserID = userID

	if err := s.firefighters.SaveFirefighter(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) DeleteFirefighter(ctx context.Context, id string) error {
	existing, err := s.firefighters.FirefighterByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("firefighter not found")
	}
	return s.firefighters.DeleteFirefighter(ctx, id)
}

func (s *Service) GetFirefighter(ctx context.Context, id string) (*models.Firefighter, error) {
	f, err := s.firefighters.FirefighterByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperr.NotFound("firefighter not found")
	}
	return f, nil
}

func (s *Service) ListFirefighters(ctx context.Context) ([]models.Firefighter, error) {
	return s.firefighters.ListFirefighters(ctx)
}

func (s *Service) FirefightersByShift(ctx context.Context, shift string) ([]models.Firefighter, error) {
	return s.firefighters.FirefightersByShift(ctx, shift)
}

func (s *Service) FirefightersByName(ctx context.Context, fragment string) ([]models.Firefighter, error) {
	return s.firefighters.FirefightersByName(ctx, fragment)
}

// Officers

func (s *Service) CreateOfficer(ctx context.Context, d OfficerDraft) (*models.Officer, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, apperr.InvalidArgument("officer name is required")
	}
	if strings.TrimSpace(d.BadgeNumber) == "" {
		return nil, apperr.InvalidArgument("badge number is required")
	}
	taken, err := s.officers.ExistsByBadgeNumber(ctx, d.BadgeNumber, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("badge number already registered")
	}
	userID, err := s.resolveLinkedUser(ctx, d.UserID, models.RolePolice)
	if err != nil {
		return nil, err
	}

	o := &models.Officer{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        d.Name,
		BadgeNumber: d.BadgeNumber,
		Phone:       d.Phone,
	}
	if err := s.officers.SaveOfficer(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) UpdateOfficer(ctx context.Context, id string, d OfficerDraft) (*models.Officer, error) {
	existing, err := s.officers.OfficerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("officer not found")
	}
	if strings.TrimSpace(d.Name) == "" {
		return nil, apperr.InvalidArgument("officer name is required")
	}
	if d.BadgeNumber != existing.BadgeNumber {
		if strings.TrimSpace(d.BadgeNumber) == "" {
			return nil, apperr.InvalidArgument("badge number is required")
		}
		taken, err := s.officers.ExistsByBadgeNumber(ctx, d.BadgeNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict("badge number already registered")
		}
	}
	userID, err := s.resolveLinkedUser(ctx, d.UserID, models.RolePolice)
	if err != nil {
		return nil, err
	}

	existing.Name = d.Name
	existing.BadgeNumber = d.BadgeNumber
	existing.Phone = d.Phone
	existing.UserID = userID

	if err := s.officers.SaveOfficer(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) DeleteOfficer(ctx context.Context, id string) error {
	existing, err := s.officers.OfficerByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("officer not found")
	}
	return s.officers.DeleteOfficer(ctx, id)
}

func (s *Service) GetOfficer(ctx context.Context, id string) (*models.Officer, error) {
	o, err := s.officers.OfficerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFound("officer not found")
	}
	return o, nil
}

func (s *Service) ListOfficers(ctx context.Context) ([]models.Officer, error) {
	return s.officers.ListOfficers(ctx)
}

func (s *Service) OfficersByName(ctx context.Context, fragment string) ([]models.Officer, error) {
	return s.officers.OfficersByName(ctx, fragment)
}

func (s *Service) OfficerByBadge(ctx context.Context, badge string) (*models.Officer, error) {
	o, err := s.officers.OfficerByBadge(ctx, badge)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFound("officer not found")
	}
	return o, nil
}
