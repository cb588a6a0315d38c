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
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, accountID int64, delta decimal.Decimal, now time.Time) (*domain.Account, error) {
	args := m.Called(ctx, accountID, delta, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes map[int64]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, changes, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Main Checking",
		AccountType: "BANK",
		Balance:     numeric.Amount{Value: decimal.NewFromInt(1500), Present: true},
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(int64(1), nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(int64(1), account.AccountID)
	suite.Equal(req.Name, account.Name)
	suite.Equal(req.AccountType, account.AccountType)
	suite.True(account.Balance.Equal(decimal.NewFromInt(1500)))
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsBalanceToZero() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Wallet",
		AccountType: "CASH",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Balance.IsZero()
	})).Return(int64(2), nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.True(account.Balance.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Broken", AccountType: "CASH"}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(int64(0), expectedErr).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: 5, Name: "Found", AccountType: "BANK"}

	suite.mockRepo.On("FindAccountByID", ctx, int64(5)).Return(expected, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, 5)

	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, int64(6)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, 6)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListAccounts", ctx, 10, 0).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, 10, 0)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: 7, Name: "Old Name", AccountType: "CASH"}
	newName := "New Name"

	suite.mockRepo.On("FindAccountByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.AccountType == "CASH"
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, 7, dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, account.Name)
	suite.Equal("CASH", account.AccountType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFields_NoWrite() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: 8, Name: "Unchanged"}

	suite.mockRepo.On("FindAccountByID", ctx, int64(8)).Return(existing, nil).Once()

	account, err := suite.service.UpdateAccount(ctx, 8, dto.UpdateAccountRequest{})

	suite.Require().NoError(err)
	suite.Equal(existing, account)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, int64(9)).
		Return(&domain.Account{AccountID: 9}, nil).Once()
	suite.mockRepo.On("DeleteAccount", ctx, int64(9)).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, 9)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, int64(10)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, 10)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestAdjustBalance_Success() {
	ctx := context.Background()
	delta := decimal.NewFromInt(-25)
	adjusted := &domain.Account{AccountID: 11, Balance: decimal.NewFromInt(75)}

	suite.mockRepo.On("AdjustBalance", ctx, int64(11), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(delta)
	}), mock.AnythingOfType("time.Time")).Return(adjusted, nil).Once()

	account, err := suite.service.AdjustBalance(ctx, 11, dto.AdjustBalanceRequest{
		Amount: numeric.Amount{Value: delta, Present: true},
	})

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(decimal.NewFromInt(75)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestAdjustBalance_MissingAmount() {
	ctx := context.Background()

	account, err := suite.service.AdjustBalance(ctx, 12, dto.AdjustBalanceRequest{})

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
