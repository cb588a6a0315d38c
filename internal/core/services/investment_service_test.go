package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portssvc "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/services"
	"github.com/fintrack-labs/expense_tracker_api/internal/core/services"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/numeric"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockInvestmentRepository is a mock type for the InvestmentRepositoryFacade interface
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) SaveInvestmentAccount(ctx context.Context, account domain.InvestmentAccount) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentAccountByID(ctx context.Context, accountID int64) (*domain.InvestmentAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestmentAccount), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestmentAccounts(ctx context.Context) ([]domain.InvestmentAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentAccount), args.Error(1)
}

func (m *MockInvestmentRepository) UpdateInvestmentAccount(ctx context.Context, account domain.InvestmentAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockInvestmentRepository) DeleteInvestmentAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockInvestmentRepository) SaveInvestmentTransaction(ctx context.Context, txn domain.InvestmentTransaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentTransactionByID(ctx context.Context, transactionID int64) (*domain.InvestmentTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestmentTransaction), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestmentTransactions(ctx context.Context) ([]domain.InvestmentTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentTransaction), args.Error(1)
}

func (m *MockInvestmentRepository) DeleteInvestmentTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type InvestmentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvestmentRepository
	service  portssvc.InvestmentSvcFacade
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvestmentRepository)
	suite.service = services.NewInvestmentService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *InvestmentServiceTestSuite) TestCreateInvestmentAccount_DefaultsToActive() {
	ctx := context.Background()
	req := dto.CreateInvestmentAccountRequest{
		CompanyName: "Acme Mutual",
		AgentName:   "J. Broker",
	}

	suite.mockRepo.On("SaveInvestmentAccount", ctx, mock.MatchedBy(func(a domain.InvestmentAccount) bool {
		return a.Status == "ACTIVE"
	})).Return(int64(1), nil).Once()

	account, err := suite.service.CreateInvestmentAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("ACTIVE", account.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestmentTransaction_Success() {
	ctx := context.Background()
	profit := numeric.Amount{Value: decimal.NewFromInt(15), Present: true}
	req := dto.CreateInvestmentTransactionRequest{
		AccountID: 2,
		Date:      time.Now(),
		Amount:    numeric.Amount{Value: decimal.NewFromInt(500), Present: true},
		Profit:    &profit,
	}

	suite.mockRepo.On("FindInvestmentAccountByID", ctx, int64(2)).
		Return(&domain.InvestmentAccount{AccountID: 2}, nil).Once()
	suite.mockRepo.On("SaveInvestmentTransaction", ctx, mock.AnythingOfType("domain.InvestmentTransaction")).
		Return(int64(10), nil).Once()

	txn, err := suite.service.CreateInvestmentTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(10), txn.TransactionID)
	suite.Require().NotNil(txn.Profit)
	suite.True(txn.Profit.Equal(decimal.NewFromInt(15)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestmentTransaction_AccountMissing() {
	ctx := context.Background()
	req := dto.CreateInvestmentTransactionRequest{
		AccountID: 99,
		Date:      time.Now(),
		Amount:    numeric.Amount{Value: decimal.NewFromInt(500), Present: true},
	}

	suite.mockRepo.On("FindInvestmentAccountByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateInvestmentTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvestmentTransaction", mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestmentTransaction_MissingAmount() {
	ctx := context.Background()
	req := dto.CreateInvestmentTransactionRequest{AccountID: 2, Date: time.Now()}

	txn, err := suite.service.CreateInvestmentTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvestmentServiceTestSuite) TestDeleteInvestmentAccount_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindInvestmentAccountByID", ctx, int64(3)).
		Return(&domain.InvestmentAccount{AccountID: 3}, nil).Once()
	suite.mockRepo.On("DeleteInvestmentAccount", ctx, int64(3)).Return(nil).Once()

	err := suite.service.DeleteInvestmentAccount(ctx, 3)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInvestmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
