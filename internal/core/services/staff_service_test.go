package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/core/services"
	"github.com/SscSPs/scan_payroll_app/internal/platform/config"
	"github.com/SscSPs/scan_payroll_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StaffServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	staffRepo *MockStaffRepository
	service   portssvc.StaffSvcFacade
	hash      string
}

func (suite *StaffServiceTestSuite) SetupSuite() {
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	suite.hash = hash
}

func (suite *StaffServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.staffRepo = new(MockStaffRepository)
	suite.service = services.NewStaffService(suite.staffRepo)
}

func TestStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}

func (suite *StaffServiceTestSuite) staff(status domain.StaffStatus) *domain.Staff {
	return &domain.Staff{StaffID: "sup-1", Name: "Ravi", Mobile: "9876543210", Role: domain.RoleSupervisor, Status: status, PasswordHash: suite.hash}
}

func (suite *StaffServiceTestSuite) TestAuthenticateStaff() {
	suite.staffRepo.On("FindStaffByMobile", suite.ctx, "9876543210").Return(suite.staff(domain.StaffActive), nil).Twice()

	staff, err := suite.service.AuthenticateStaff(suite.ctx, "9876543210", "correct-horse")
	suite.Require().NoError(err)
	suite.Equal("sup-1", staff.StaffID)

	_, err = suite.service.AuthenticateStaff(suite.ctx, "9876543210", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.staffRepo.On("FindStaffByMobile", suite.ctx, "9000000000").Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.AuthenticateStaff(suite.ctx, "9000000000", "correct-horse")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *StaffServiceTestSuite) TestAuthenticateStaff_PendingAccount() {
	suite.staffRepo.On("FindStaffByMobile", suite.ctx, "9876543210").Return(suite.staff(domain.StaffPending), nil).Twice()

	_, err := suite.service.AuthenticateStaff(suite.ctx, "9876543210", "correct-horse")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	// Without the password the account status is not revealed.
	_, err = suite.service.AuthenticateStaff(suite.ctx, "9876543210", "guess")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *StaffServiceTestSuite) TestResolveActor() {
	suite.staffRepo.On("FindStaffByID", suite.ctx, "sup-1").Return(suite.staff(domain.StaffInactive), nil).Once()
	actor, err := suite.service.ResolveActor(suite.ctx, "sup-1")
	suite.Require().NoError(err)
	suite.Equal(domain.RoleSupervisor, actor.Role)
	suite.False(actor.IsActive(), "status is carried so services can reject the actor")

	suite.staffRepo.On("FindStaffByID", suite.ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.ResolveActor(suite.ctx, "gone")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.staffRepo.On("FindStaffByID", suite.ctx, "boom").Return(nil, errors.New("db down")).Once()
	_, err = suite.service.ResolveActor(suite.ctx, "boom")
	suite.Require().Error(err)
	suite.False(apperrors.IsDomainError(err))
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "token-secret", JWTExpiryDuration: 2 * time.Hour, JWTIssuer: "scanpay"}
	svc := services.NewTokenService(cfg)

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.Staff{StaffID: "sup-1"})
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "sup-1", claims.Subject)
	assert.Equal(t, "scanpay", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, time.Minute)
}

func TestTokenService_ExpiryFollowsInjectedClock(t *testing.T) {
	cfg := &config.Config{JWTSecret: "token-secret", JWTExpiryDuration: 2 * time.Hour, JWTIssuer: "scanpay"}
	issued := time.Now().UTC().Add(-30 * time.Minute).Truncate(time.Second)
	svc := services.NewTokenService(cfg, services.WithTokenClock(func() time.Time { return issued }))

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.Staff{StaffID: "sup-1"})
	require.NoError(t, err)
	assert.True(t, issued.Add(2*time.Hour).Equal(expiresAt))

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.True(t, claims.IssuedAt.Time.Equal(issued))
	assert.True(t, claims.ExpiresAt.Time.Equal(expiresAt), "exp claim %s, reported %s", claims.ExpiresAt.Time, expiresAt)
}
