package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portssvc "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/services"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
	"github.com/fintrack-labs/expense_tracker_api/internal/handlers"
	"github.com/fintrack-labs/expense_tracker_api/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
func (m *MockAccountService) AdjustBalance(ctx context.Context, accountID int64, req dto.AdjustBalanceRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateEntry(ctx context.Context, kind domain.EntryKind, req dto.CreateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockLedgerService) GetEntryByID(ctx context.Context, kind domain.EntryKind, entryID int64) (*domain.Entry, error) {
	args := m.Called(ctx, kind, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context, kind domain.EntryKind, params dto.ListEntriesParams) ([]domain.Entry, error) {
	args := m.Called(ctx, kind, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
func (m *MockLedgerService) UpdateEntry(ctx context.Context, kind domain.EntryKind, entryID int64, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, kind, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockLedgerService) DeleteEntry(ctx context.Context, kind domain.EntryKind, entryID int64) error {
	args := m.Called(ctx, kind, entryID)
	return args.Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetLedgerDashboard(ctx context.Context, kind domain.EntryKind) (*domain.LedgerDashboard, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerDashboard), args.Error(1)
}
func (m *MockDashboardService) GetLoanDashboard(ctx context.Context) (*domain.LoanDashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanDashboard), args.Error(1)
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockAccountService   *MockAccountService
	mockLedgerService    *MockLedgerService
	mockDashboardService *MockDashboardService
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)
	suite.mockLedgerService = new(MockLedgerService)
	suite.mockDashboardService = new(MockDashboardService)

	// IsProduction skips the swagger route setup; the loan and investment
	// routes are registered but not exercised by this suite.
	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{
		Account:   suite.mockAccountService,
		Ledger:    suite.mockLedgerService,
		Dashboard: suite.mockDashboardService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *EntryHandlerTestSuite) serve(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestHealth() {
	w := suite.serve(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *EntryHandlerTestSuite) TestCreateExpense_Success() {
	accountID := int64(3)
	expected := &domain.Entry{
		EntryID:    7,
		Kind:       domain.KindExpense,
		OccurredAt: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
		Category:   "Food",
		Amount:     decimal.NewFromInt(50),
		AccountID:  &accountID,
	}

	suite.mockLedgerService.On("CreateEntry",
		mock.Anything,
		domain.KindExpense,
		mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
			return req.Category == "Food" &&
				req.Amount.Present && req.Amount.Value.Equal(decimal.NewFromInt(50)) &&
				req.AccountID.Present && req.AccountID.ID != nil && *req.AccountID.ID == accountID
		}),
	).Return(expected, nil).Once()

	body := `{"occurredAt":"2026-08-12T00:00:00Z","category":"Food","amount":50,"accountID":3}`
	w := suite.serve(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.EntryID)
	suite.Equal(domain.KindExpense, resp.Kind)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(50)))

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateIncome_CoercesFormattedAmount() {
	expected := &domain.Entry{
		EntryID:  9,
		Kind:     domain.KindIncome,
		Category: "Salary",
		Amount:   decimal.RequireFromString("1234.50"),
	}

	suite.mockLedgerService.On("CreateEntry",
		mock.Anything,
		domain.KindIncome,
		mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
			return req.Amount.Present && req.Amount.Value.Equal(decimal.RequireFromString("1234.50"))
		}),
	).Return(expected, nil).Once()

	body := `{"occurredAt":"2026-08-01T00:00:00Z","category":"Salary","amount":"$1,234.50"}`
	w := suite.serve(http.MethodPost, "/api/v1/income", body)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateExpense_UnparseableAmount_BadRequest() {
	body := `{"occurredAt":"2026-08-12T00:00:00Z","category":"Food","amount":"fifty"}`
	w := suite.serve(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateEntry")
}

func (suite *EntryHandlerTestSuite) TestCreateExpense_AccountMissing_NotFound() {
	suite.mockLedgerService.On("CreateEntry", mock.Anything, domain.KindExpense, mock.Anything).
		Return(nil, fmt.Errorf("%w: id 99", apperrors.ErrAccountNotFound)).Once()

	body := `{"occurredAt":"2026-08-12T00:00:00Z","category":"Food","amount":50,"accountID":99}`
	w := suite.serve(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListExpenses_ServiceError_Internal() {
	suite.mockLedgerService.On("ListEntries", mock.Anything, domain.KindExpense, mock.Anything).
		Return(nil, fmt.Errorf("connection reset")).Once()

	w := suite.serve(http.MethodGet, "/api/v1/expenses", "")

	suite.Equal(http.StatusInternalServerError, w.Code)

	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Failed to list entries", resp["error"])
}

func (suite *EntryHandlerTestSuite) TestGetExpense_InvalidID_BadRequest() {
	w := suite.serve(http.MethodGet, "/api/v1/expenses/abc", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetEntryByID")
}

func (suite *EntryHandlerTestSuite) TestDeleteIncome_NotFound() {
	suite.mockLedgerService.On("DeleteEntry", mock.Anything, domain.KindIncome, int64(12)).
		Return(apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/income/12", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestUpdateExpense_NullAccountID_Passthrough() {
	expected := &domain.Entry{EntryID: 4, Kind: domain.KindExpense, Category: "Food", Amount: decimal.NewFromInt(20)}

	suite.mockLedgerService.On("UpdateEntry",
		mock.Anything,
		domain.KindExpense,
		int64(4),
		mock.MatchedBy(func(req dto.UpdateEntryRequest) bool {
			// Explicit null must arrive as present-with-nil, not absent.
			return req.AccountID.Present && req.AccountID.ID == nil
		}),
	).Return(expected, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/expenses/4", `{"accountID":null}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestExpenseDashboard_Success() {
	dash := &domain.LedgerDashboard{
		Kind:       domain.KindExpense,
		MonthTotal: decimal.NewFromInt(175),
		Recent: []domain.Entry{
			{EntryID: 2, Kind: domain.KindExpense, Category: "Food", Amount: decimal.NewFromInt(125)},
			{EntryID: 1, Kind: domain.KindExpense, Category: "Travel", Amount: decimal.NewFromInt(50)},
		},
	}
	suite.mockDashboardService.On("GetLedgerDashboard", mock.Anything, domain.KindExpense).
		Return(dash, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/expenses/dashboard", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerDashboardResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.MonthTotal.Equal(decimal.NewFromInt(175)))
	suite.Len(resp.Recent, 2)
	suite.Equal(int64(2), resp.Recent[0].EntryID)

	suite.mockDashboardService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateAccount_Success() {
	expected := &domain.Account{
		AccountID:   1,
		Name:        "Wallet",
		AccountType: "Cash",
		Balance:     decimal.NewFromInt(100),
	}
	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Name == "Wallet" && req.AccountType == "Cash" &&
				req.Balance.Present && req.Balance.Value.Equal(decimal.NewFromInt(100))
		}),
	).Return(expected, nil).Once()

	body := `{"name":"Wallet","accountType":"Cash","balance":100}`
	w := suite.serve(http.MethodPost, "/api/v1/accounts", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.AccountID)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(100)))

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateAccount_MissingName_BadRequest() {
	w := suite.serve(http.MethodPost, "/api/v1/accounts", `{"accountType":"Cash"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *EntryHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, int64(42)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/42", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestDeleteAccount_NoContent() {
	suite.mockAccountService.On("DeleteAccount", mock.Anything, int64(5)).
		Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/accounts/5", "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestAdjustBalance_CoercesFormattedAmount() {
	expected := &domain.Account{AccountID: 5, Name: "Bank", AccountType: "Bank", Balance: decimal.RequireFromString("1250.00")}

	suite.mockAccountService.On("AdjustBalance",
		mock.Anything,
		int64(5),
		mock.MatchedBy(func(req dto.AdjustBalanceRequest) bool {
			return req.Amount.Present && req.Amount.Value.Equal(decimal.RequireFromString("1250.00"))
		}),
	).Return(expected, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/accounts/5/balance", `{"amount":"$1,250.00"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestEntryHandler(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
