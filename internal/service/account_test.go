package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopview/dashboard/internal/api"
	"github.com/shopview/dashboard/internal/domain"
	apperrors "github.com/shopview/dashboard/pkg/errors"
	"github.com/shopview/dashboard/pkg/pagination"
)

type mockAccountAPI struct {
	mock.Mock
}

func (m *mockAccountAPI) GetProfile(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockAccountAPI) UpdateProfile(ctx context.Context, input api.UpdateProfileInput) (*domain.Profile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockAccountAPI) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return m.Called(ctx, currentPassword, newPassword).Error(0)
}

func (m *mockAccountAPI) ListOrders(ctx context.Context, params pagination.Params) (*pagination.Result[domain.Order], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Result[domain.Order]), args.Error(1)
}

func (m *mockAccountAPI) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *mockAccountAPI) Authenticated() bool {
	return m.Called().Bool(0)
}

func TestProfile_RequiresAuthentication(t *testing.T) {
	accountAPI := new(mockAccountAPI)
	svc := NewAccountService(accountAPI, newTestLogger())

	accountAPI.On("Authenticated").Return(false)

	_, err := svc.Profile(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))
	accountAPI.AssertNotCalled(t, "GetProfile", mock.Anything)
}

func TestUpdateProfile_ValidatesBeforeNetwork(t *testing.T) {
	accountAPI := new(mockAccountAPI)
	svc := NewAccountService(accountAPI, newTestLogger())

	accountAPI.On("Authenticated").Return(true)

	tests := []struct {
		name  string
		input UpdateProfileInput
	}{
		{"empty name", UpdateProfileInput{Name: "", Email: "a@b.com"}},
		{"one-char name", UpdateProfileInput{Name: "A", Email: "a@b.com"}},
		{"bad email", UpdateProfileInput{Name: "Ada", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), tt.input)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
	accountAPI.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestUpdateProfile_Success(t *testing.T) {
	accountAPI := new(mockAccountAPI)
	svc := NewAccountService(accountAPI, newTestLogger())
	ctx := context.Background()

	want := &domain.Profile{ID: "prof-1", Name: "Ada Lovelace", Email: "ada@example.com"}
	accountAPI.On("Authenticated").Return(true)
	accountAPI.On("UpdateProfile", ctx, api.UpdateProfileInput{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0100",
	}).Return(want, nil)

	got, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	accountAPI.AssertExpectations(t)
}

func TestChangePassword_ConfirmationMismatchRejectedBeforeNetwork(t *testing.T) {
	accountAPI := new(mockAccountAPI)
	svc := NewAccountService(accountAPI, newTestLogger())

	accountAPI.On("Authenticated").Return(true)

	err := svc.ChangePassword(context.Background(), ChangePasswordInput{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret-1",
		ConfirmPassword: "new-secret-2",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	accountAPI.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_Success(t *testing.T) {
	accountAPI := new(mockAccountAPI)
	svc := NewAccountService(accountAPI, newTestLogger())
	ctx := context.Background()

	accountAPI.On("Authenticated").Return(true)
	accountAPI.On("ChangePassword", ctx, "old-secret", "new-secret-1").Return(nil)

	require.NoError(t, svc.ChangePassword(ctx, ChangePasswordInput{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret-1",
		ConfirmPassword: "new-secret-1",
	}))
	accountAPI.AssertExpectations(t)
}

func TestOrders_PassesPagination(t *testing.T) {
	accountAPI := new(mockAccountAPI)
	svc := NewAccountService(accountAPI, newTestLogger())
	ctx := context.Background()

	params := pagination.Params{Page: 2, PerPage: 10}
	want := &pagination.Result[domain.Order]{
		Data:       []domain.Order{{ID: "ord-1"}},
		TotalCount: 11,
		Page:       2,
	}
	accountAPI.On("Authenticated").Return(true)
	accountAPI.On("ListOrders", ctx, params).Return(want, nil)

	got, err := svc.Orders(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVouchers(t *testing.T) {
	accountAPI := new(mockAccountAPI)
	svc := NewAccountService(accountAPI, newTestLogger())
	ctx := context.Background()

	expires := time.Now().Add(48 * time.Hour)
	accountAPI.On("Authenticated").Return(true)
	accountAPI.On("ListVouchers", ctx).Return([]domain.Voucher{{ID: "v1", Code: "SAVE10", ExpiresAt: expires}}, nil)

	vouchers, err := svc.Vouchers(ctx)
	require.NoError(t, err)
	require.Len(t, vouchers, 1)
	assert.False(t, vouchers[0].IsExpired(time.Now()))
}
