package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/core/services"
	"github.com/evfin/event_finance_app/internal/dto"
	"github.com/google/uuid"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockRepo)
}

func validSettingsRequest() dto.UpdateSettingsRequest {
	return dto.UpdateSettingsRequest{
		EventName:         "Spring Conference",
		ReportingCurrency: "EUR",
		SecondaryCurrency: "HUF",
		ExchangeRate:      decimal.RequireFromString("400"),
		Accounts:          []string{"Main bank", "Cash box"},
	}
}

func (suite *SettingsServiceTestSuite) TestGetSettings_Success() {
	ctx := context.Background()
	expected := testSettings()

	suite.mockRepo.On("GetSettings", ctx).Return(expected, nil).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, settings)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestGetSettings_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("GetSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_Success() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	req := validSettingsRequest()

	suite.mockRepo.On("GetSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.Settings) bool {
		return s.SettingsID == domain.SettingsID &&
			s.EventName == req.EventName &&
			s.ReportingCurrency == "EUR" &&
			s.SecondaryCurrency == "HUF" &&
			s.ExchangeRate.Equal(req.ExchangeRate) &&
			s.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(settings)
	suite.Equal([]string{"Main bank", "Cash box"}, settings.Accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_PreservesCreationAudit() {
	ctx := context.Background()
	originalCreator := uuid.NewString()
	createdAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	existing := testSettings()
	existing.CreatedAt = createdAt
	existing.CreatedBy = originalCreator

	suite.mockRepo.On("GetSettings", ctx).Return(existing, nil).Once()
	suite.mockRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.Settings) bool {
		return s.CreatedBy == originalCreator && s.CreatedAt.Equal(createdAt)
	})).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, validSettingsRequest(), uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(originalCreator, settings.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_NonPositiveRate() {
	ctx := context.Background()
	req := validSettingsRequest()
	req.ExchangeRate = decimal.Zero

	settings, err := suite.service.UpdateSettings(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_SameCurrencies() {
	ctx := context.Background()
	req := validSettingsRequest()
	req.SecondaryCurrency = "EUR"

	settings, err := suite.service.UpdateSettings(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_DedupesAccounts() {
	ctx := context.Background()
	req := validSettingsRequest()
	req.Accounts = []string{"Main bank", "  Main bank ", "", "Cash box"}

	suite.mockRepo.On("GetSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSettings", ctx, mock.AnythingOfType("domain.Settings")).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal([]string{"Main bank", "Cash box"}, settings.Accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("GetSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSettings", ctx, mock.AnythingOfType("domain.Settings")).Return(expectedErr).Once()

	settings, err := suite.service.UpdateSettings(ctx, validSettingsRequest(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
