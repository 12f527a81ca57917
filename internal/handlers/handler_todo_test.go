package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/karales/todo_backend/internal/apperrors"
	"github.com/karales/todo_backend/internal/core/domain"
	portssvc "github.com/karales/todo_backend/internal/core/ports/services"
	"github.com/karales/todo_backend/internal/dto"
	"github.com/karales/todo_backend/internal/handlers"
	"github.com/karales/todo_backend/internal/platform/config"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Test Suite ---
type TodoHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	mockTodoService *MockTodoService
	mockTokenSvc    *MockTokenService
	mockGoogleSvc   *MockGoogleOAuthService
}

func (suite *TodoHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockUserService = new(MockUserService)
	suite.mockTodoService = new(MockTodoService)
	suite.mockTokenSvc = new(MockTokenService)
	suite.mockGoogleSvc = new(MockGoogleOAuthService)

	cfg := &config.Config{
		JWTSecret:       testJWTSecret,
		FrontendBaseURL: "http://localhost:3000",
	}
	container := &portssvc.ServiceContainer{
		User:        suite.mockUserService,
		Todo:        suite.mockTodoService,
		Token:       suite.mockTokenSvc,
		GoogleOAuth: suite.mockGoogleSvc,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// generateTestToken creates a signed JWT for the given user.
func (suite *TodoHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "todo-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TodoHandlerTestSuite) generateExpiredToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TodoHandlerTestSuite) doRequest(method, url, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Authorization Gate ---

func (suite *TodoHandlerTestSuite) TestMissingAuthHeader_Returns401() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTodoService.AssertNotCalled(suite.T(), "ListTodos")
}

func (suite *TodoHandlerTestSuite) TestMalformedAuthHeader_Returns401() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	req.Header.Set("Authorization", "NotBearer something")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTodoService.AssertNotCalled(suite.T(), "ListTodos")
}

func (suite *TodoHandlerTestSuite) TestExpiredToken_Returns403() {
	token := suite.generateExpiredToken(uuid.NewString())
	w := suite.doRequest(http.MethodGet, "/api/v1/todos", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTodoService.AssertNotCalled(suite.T(), "ListTodos")
}

func (suite *TodoHandlerTestSuite) TestWrongSignature_Returns403() {
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("a-different-secret-entirely"))
	suite.Require().NoError(err)

	w := suite.doRequest(http.MethodGet, "/api/v1/todos", signed, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTodoService.AssertNotCalled(suite.T(), "ListTodos")
}

// --- CRUD ---

func (suite *TodoHandlerTestSuite) TestCreateTodo_Success() {
	userID := uuid.NewString()
	created := &domain.Todo{
		TodoID:    uuid.NewString(),
		UserID:    userID,
		Title:     "Buy milk",
		CreatedAt: time.Now(),
	}

	suite.mockTodoService.On("CreateTodo", mock.Anything, userID, mock.MatchedBy(func(req dto.CreateTodoRequest) bool {
		return req.Title == "Buy milk"
	})).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/todos", suite.generateTestToken(userID), gin.H{"title": "Buy milk"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TodoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TodoID, resp.TodoID)
	suite.Equal("Buy milk", resp.Title)
	suite.mockTodoService.AssertExpectations(suite.T())
}

func (suite *TodoHandlerTestSuite) TestCreateTodo_MissingTitle_Returns400() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, "/api/v1/todos", suite.generateTestToken(userID), gin.H{"description": "no title"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTodoService.AssertNotCalled(suite.T(), "CreateTodo")
}

func (suite *TodoHandlerTestSuite) TestListTodos_FilterBinding() {
	userID := uuid.NewString()

	suite.mockTodoService.On("ListTodos", mock.Anything, userID, mock.MatchedBy(func(p dto.ListTodosParams) bool {
		return p.Keyword == "milk" && p.Completed != nil && !*p.Completed
	})).Return([]domain.Todo{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/todos?keyword=milk&completed=false", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTodoService.AssertExpectations(suite.T())
}

func (suite *TodoHandlerTestSuite) TestGetTodo_ForeignTodo_Returns404() {
	userID := uuid.NewString()
	todoID := uuid.NewString()

	// Ownership scoping surfaces foreign rows as not-found.
	suite.mockTodoService.On("GetTodoByID", mock.Anything, userID, todoID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/todos/"+todoID, suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTodoService.AssertExpectations(suite.T())
}

func (suite *TodoHandlerTestSuite) TestUpdateTodo_Partial() {
	userID := uuid.NewString()
	todoID := uuid.NewString()
	updated := &domain.Todo{TodoID: todoID, UserID: userID, Title: "Kept", Completed: true}

	suite.mockTodoService.On("UpdateTodo", mock.Anything, userID, todoID, mock.MatchedBy(func(req dto.UpdateTodoRequest) bool {
		return req.Title == nil && req.Completed != nil && *req.Completed
	})).Return(updated, nil).Once()

	w := suite.doRequest(http.MethodPatch, "/api/v1/todos/"+todoID, suite.generateTestToken(userID), gin.H{"completed": true})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TodoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Completed)
	suite.Equal("Kept", resp.Title)
}

func (suite *TodoHandlerTestSuite) TestDeleteTodo_Success() {
	userID := uuid.NewString()
	todoID := uuid.NewString()

	suite.mockTodoService.On("DeleteTodo", mock.Anything, userID, todoID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/todos/"+todoID, suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Todo deleted successfully", resp["message"])
}

func (suite *TodoHandlerTestSuite) TestDeleteTodo_AlreadyDeleted_Returns404() {
	userID := uuid.NewString()
	todoID := uuid.NewString()

	suite.mockTodoService.On("DeleteTodo", mock.Anything, userID, todoID).Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/todos/"+todoID, suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TodoHandlerTestSuite) TestListTodos_DBTimeout_Returns503() {
	userID := uuid.NewString()

	suite.mockTodoService.On("ListTodos", mock.Anything, userID, mock.AnythingOfType("dto.ListTodosParams")).Return(nil, apperrors.ErrServiceUnavailable).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/todos", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

// --- Run Test Suite ---
func TestTodoHandler(t *testing.T) {
	suite.Run(t, new(TodoHandlerTestSuite))
}
