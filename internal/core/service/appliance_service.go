package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wattwise/energy-system/internal/core/domain"
	"github.com/wattwise/energy-system/internal/core/ports"
)

// ApplianceService implements the appliance registry, scoped to the calling
// user's billing account.
type ApplianceService struct {
	accounts   ports.AccountRepository
	appliances ports.ApplianceRepository
	logger     zerolog.Logger
}

func NewApplianceService(accounts ports.AccountRepository, appliances ports.ApplianceRepository, logger zerolog.Logger) *ApplianceService {
	return &ApplianceService{accounts: accounts, appliances: appliances, logger: logger}
}

// Create registers a new appliance, switched off, under the user's account.
func (s *ApplianceService) Create(ctx context.Context, userID int64, in ports.CreateApplianceInput) (*domain.Appliance, error) {
	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applianceType := domain.ApplianceType(in.Type)
	if !applianceType.Valid() {
		return nil, domain.ErrInvalidApplianceType
	}

	created, err := s.appliances.Create(ctx, &domain.Appliance{
		AccountID:     account.ID,
		Name:          in.Name,
		Type:          applianceType,
		IsOn:          false,
		PowerRatingKW: in.PowerRatingKW,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("appliance_id", created.ID).
		Str("type", string(created.Type)).
		Msg("appliance created")

	return created, nil
}

// List returns the account's appliances; a user without an account gets an
// empty list rather than an error.
func (s *ApplianceService) List(ctx context.Context, userID int64) ([]domain.Appliance, error) {
	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNoAccount {
			return []domain.Appliance{}, nil
		}
		return nil, err
	}
	return s.appliances.ListByAccount(ctx, account.ID)
}

// Control toggles an owned appliance and returns the advisory message. The
// appliance must belong to the caller's account; last writer wins on
// concurrent toggles.
func (s *ApplianceService) Control(ctx context.Context, userID, applianceID int64, action string) (*ports.ControlResult, error) {
	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	action = strings.ToUpper(action)
	if action != "ON" && action != "OFF" {
		return nil, domain.ErrInvalidAction
	}
	on := action == "ON"

	appliance, err := s.appliances.FindOwned(ctx, applianceID, account.ID)
	if err != nil {
		return nil, err
	}

	if err := s.appliances.SetState(ctx, applianceID, account.ID, on); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("appliance_id", applianceID).
		Str("action", action).
		Msg("appliance toggled")

	return &ports.ControlResult{
		ApplianceID: applianceID,
		NewStatus:   on,
		AIMessage:   AdviseControl(appliance.Name, action, appliance.PowerRatingKW),
	}, nil
}
