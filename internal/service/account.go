package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopview/dashboard/internal/api"
	"github.com/shopview/dashboard/internal/domain"
	apperrors "github.com/shopview/dashboard/pkg/errors"
	"github.com/shopview/dashboard/pkg/pagination"
	"github.com/shopview/dashboard/pkg/validator"
)

// AccountAPI is the slice of the commerce API the account service consumes.
type AccountAPI interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, input api.UpdateProfileInput) (*domain.Profile, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	ListOrders(ctx context.Context, params pagination.Params) (*pagination.Result[domain.Order], error)
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
	Authenticated() bool
}

// UpdateProfileInput holds the editable account fields.
type UpdateProfileInput struct {
	Name  string `validate:"required,min=2,max=100"`
	Email string `validate:"required,email"`
	Phone string `validate:"max=32"`
}

// ChangePasswordInput holds the password-change form fields. The confirmation
// must match the new password; the mismatch is caught before any network call.
type ChangePasswordInput struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

// AccountService implements the account-settings, order-history, and voucher
// screens' logic.
type AccountService struct {
	api    AccountAPI
	logger *slog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(accountAPI AccountAPI, logger *slog.Logger) *AccountService {
	return &AccountService{
		api:    accountAPI,
		logger: logger,
	}
}

// Profile returns the customer's account profile.
func (s *AccountService) Profile(ctx context.Context) (*domain.Profile, error) {
	if !s.api.Authenticated() {
		return nil, apperrors.Unauthenticated("sign in to view your account")
	}
	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile validates and saves the profile form.
func (s *AccountService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	if !s.api.Authenticated() {
		return nil, apperrors.Unauthenticated("sign in to edit your account")
	}
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	profile, err := s.api.UpdateProfile(ctx, api.UpdateProfileInput{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.logger.InfoContext(ctx, "profile updated", slog.String("profile_id", profile.ID))
	return profile, nil
}

// ChangePassword validates the password form (including the confirmation
// match) and submits the change.
func (s *AccountService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if !s.api.Authenticated() {
		return apperrors.Unauthenticated("sign in to change your password")
	}
	if err := validator.Validate(input); err != nil {
		return apperrors.Validation(err.Error())
	}

	if err := s.api.ChangePassword(ctx, input.CurrentPassword, input.NewPassword); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.logger.InfoContext(ctx, "password changed")
	return nil
}

// Orders returns one page of the customer's order history.
func (s *AccountService) Orders(ctx context.Context, params pagination.Params) (*pagination.Result[domain.Order], error) {
	if !s.api.Authenticated() {
		return nil, apperrors.Unauthenticated("sign in to view your orders")
	}
	orders, err := s.api.ListOrders(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

// Vouchers returns the customer's vouchers.
func (s *AccountService) Vouchers(ctx context.Context) ([]domain.Voucher, error) {
	if !s.api.Authenticated() {
		return nil, apperrors.Unauthenticated("sign in to view your vouchers")
	}
	vouchers, err := s.api.ListVouchers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vouchers: %w", err)
	}
	return vouchers, nil
}
