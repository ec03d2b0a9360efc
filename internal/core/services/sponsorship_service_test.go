package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/core/services"
	"github.com/evfin/event_finance_app/internal/dto"
)

type SponsorshipServiceTestSuite struct {
	suite.Suite
	mockRepo           *MockSponsorshipRepository
	mockBudgetLineRepo *MockBudgetLineRepository
	mockSettingsSvc    *MockSettingsService
	service            portssvc.SponsorshipSvcFacade

	lineVenue string
}

func (suite *SponsorshipServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSponsorshipRepository)
	suite.mockBudgetLineRepo = new(MockBudgetLineRepository)
	suite.mockSettingsSvc = new(MockSettingsService)
	suite.service = services.NewSponsorshipService(suite.mockRepo, suite.mockBudgetLineRepo, suite.mockSettingsSvc)

	suite.lineVenue = uuid.NewString()
}

func (suite *SponsorshipServiceTestSuite) knownBudgetLines() []domain.BudgetLine {
	return []domain.BudgetLine{
		{BudgetLineID: suite.lineVenue, Name: "Venue rental", MacroCategory: "Venue"},
	}
}

func validSponsorshipRequest() dto.CreateSponsorshipRequest {
	return dto.CreateSponsorshipRequest{
		SponsorName:   "Acme Corp",
		PledgedAmount: decimal.RequireFromString("2000"),
		PaidAmount:    decimal.Zero,
		CurrencyCode:  "EUR",
		Status:        "PLEDGED",
		PaymentMethod: "BANK_TRANSFER",
		Account:       "Main bank",
	}
}

func (suite *SponsorshipServiceTestSuite) TestCreateSponsorship_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := validSponsorshipRequest()
	req.Allocations = []dto.AllocationRequest{
		{BudgetLineID: suite.lineVenue, Amount: decimal.RequireFromString("2000")},
	}

	suite.mockSettingsSvc.On("GetSettings", ctx).Return(testSettings(), nil).Once()
	suite.mockBudgetLineRepo.On("ListBudgetLines", ctx).Return(suite.knownBudgetLines(), nil).Once()
	suite.mockRepo.On("SaveSponsorship", ctx, mock.MatchedBy(func(s domain.Sponsorship) bool {
		return s.SponsorName == req.SponsorName &&
			s.Status == domain.SponsorshipPledged &&
			s.CreatedBy == creatorUserID
	}), mock.MatchedBy(func(allocations []domain.Allocation) bool {
		return len(allocations) == 1 && allocations[0].Amount.Equal(req.PledgedAmount)
	})).Return(nil).Once()

	sp, err := suite.service.CreateSponsorship(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sp)
	suite.Len(sp.Allocations, 1)
	suite.Equal(sp.SponsorshipID, sp.Allocations[0].ParentID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SponsorshipServiceTestSuite) TestCreateSponsorship_AllocationsAgainstPledgedNotPaid() {
	ctx := context.Background()
	req := validSponsorshipRequest()
	req.Status = "PARTIALLY_PAID"
	req.PaidAmount = decimal.RequireFromString("500")
	// Sums to the paid amount instead of the pledged amount, so it must
	// be rejected.
	req.Allocations = []dto.AllocationRequest{
		{BudgetLineID: suite.lineVenue, Amount: decimal.RequireFromString("500")},
	}

	suite.mockSettingsSvc.On("GetSettings", ctx).Return(testSettings(), nil).Once()

	sp, err := suite.service.CreateSponsorship(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSponsorship", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SponsorshipServiceTestSuite) TestCreateSponsorship_PaidWithPledgedStatusIsAllowed() {
	ctx := context.Background()
	req := validSponsorshipRequest()
	req.PaidAmount = decimal.RequireFromString("300")

	suite.mockSettingsSvc.On("GetSettings", ctx).Return(testSettings(), nil).Once()
	suite.mockRepo.On("SaveSponsorship", ctx, mock.AnythingOfType("domain.Sponsorship"), mock.Anything).Return(nil).Once()

	sp, err := suite.service.CreateSponsorship(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.SponsorshipPledged, sp.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SponsorshipServiceTestSuite) TestCreateSponsorship_NonPositivePledged() {
	ctx := context.Background()
	req := validSponsorshipRequest()
	req.PledgedAmount = decimal.Zero

	sp, err := suite.service.CreateSponsorship(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SponsorshipServiceTestSuite) TestCreateSponsorship_NegativePaid() {
	ctx := context.Background()
	req := validSponsorshipRequest()
	req.PaidAmount = decimal.RequireFromString("-1")

	sp, err := suite.service.CreateSponsorship(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SponsorshipServiceTestSuite) TestUpdateSponsorship_ForwardTransition() {
	ctx := context.Background()
	sponsorshipID := uuid.NewString()
	existing := &domain.Sponsorship{
		SponsorshipID: sponsorshipID,
		SponsorName:   "Acme Corp",
		PledgedAmount: decimal.RequireFromString("2000"),
		Status:        domain.SponsorshipPledged,
	}
	req := validSponsorshipRequest()
	req.Status = "PAID"
	req.PaidAmount = decimal.RequireFromString("2000")

	suite.mockRepo.On("FindSponsorshipByID", ctx, sponsorshipID).Return(existing, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx).Return(testSettings(), nil).Once()
	suite.mockRepo.On("UpdateSponsorship", ctx, mock.MatchedBy(func(s domain.Sponsorship) bool {
		return s.SponsorshipID == sponsorshipID && s.Status == domain.SponsorshipPaid
	}), mock.Anything).Return(nil).Once()

	sp, err := suite.service.UpdateSponsorship(ctx, sponsorshipID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.SponsorshipPaid, sp.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SponsorshipServiceTestSuite) TestUpdateSponsorship_BackwardTransitionRejected() {
	ctx := context.Background()
	sponsorshipID := uuid.NewString()
	existing := &domain.Sponsorship{
		SponsorshipID: sponsorshipID,
		PledgedAmount: decimal.RequireFromString("2000"),
		Status:        domain.SponsorshipPaid,
	}
	req := validSponsorshipRequest()
	req.Status = "PLEDGED"

	suite.mockRepo.On("FindSponsorshipByID", ctx, sponsorshipID).Return(existing, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx).Return(testSettings(), nil).Once()

	sp, err := suite.service.UpdateSponsorship(ctx, sponsorshipID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSponsorship", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SponsorshipServiceTestSuite) TestUpdateSponsorship_CancelFromAnywhere() {
	ctx := context.Background()
	sponsorshipID := uuid.NewString()
	existing := &domain.Sponsorship{
		SponsorshipID: sponsorshipID,
		PledgedAmount: decimal.RequireFromString("2000"),
		Status:        domain.SponsorshipPaid,
	}
	req := validSponsorshipRequest()
	req.Status = "CANCELLED"

	suite.mockRepo.On("FindSponsorshipByID", ctx, sponsorshipID).Return(existing, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx).Return(testSettings(), nil).Once()
	suite.mockRepo.On("UpdateSponsorship", ctx, mock.AnythingOfType("domain.Sponsorship"), mock.Anything).Return(nil).Once()

	sp, err := suite.service.UpdateSponsorship(ctx, sponsorshipID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.SponsorshipCancelled, sp.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SponsorshipServiceTestSuite) TestUpdateSponsorship_ReactivatingCancelledRejected() {
	ctx := context.Background()
	sponsorshipID := uuid.NewString()
	existing := &domain.Sponsorship{
		SponsorshipID: sponsorshipID,
		PledgedAmount: decimal.RequireFromString("2000"),
		Status:        domain.SponsorshipCancelled,
	}
	req := validSponsorshipRequest()
	req.Status = "PLEDGED"

	suite.mockRepo.On("FindSponsorshipByID", ctx, sponsorshipID).Return(existing, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx).Return(testSettings(), nil).Once()

	sp, err := suite.service.UpdateSponsorship(ctx, sponsorshipID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SponsorshipServiceTestSuite) TestDeleteSponsorship_Success() {
	ctx := context.Background()
	sponsorshipID := uuid.NewString()

	suite.mockRepo.On("DeleteSponsorship", ctx, sponsorshipID).Return(nil).Once()

	err := suite.service.DeleteSponsorship(ctx, sponsorshipID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SponsorshipServiceTestSuite) TestGetSponsorshipByID_NotFound() {
	ctx := context.Background()
	sponsorshipID := uuid.NewString()

	suite.mockRepo.On("FindSponsorshipByID", ctx, sponsorshipID).Return(nil, apperrors.ErrNotFound).Once()

	sp, err := suite.service.GetSponsorshipByID(ctx, sponsorshipID)

	suite.Require().Error(err)
	suite.Nil(sp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SponsorshipServiceTestSuite) TestListSponsorships_ClampsLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListSponsorships", ctx, 50, (*string)(nil)).Return([]domain.Sponsorship{}, nil, nil).Once()

	_, _, err := suite.service.ListSponsorships(ctx, 500, nil)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSponsorshipService(t *testing.T) {
	suite.Run(t, new(SponsorshipServiceTestSuite))
}
