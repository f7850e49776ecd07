package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/config"
	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockTransactionRepositoryInterface
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
}

func (s *DevHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerTestSuite) newSeedContext(query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/seed"+query, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func devConfig(environment string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: environment},
	}
}

func (s *DevHandlerTestSuite) TestSeedTransactions_Development() {
	handler := NewDevHandler(s.mockRepo, devConfig("development"))
	c, rec := s.newSeedContext("?count=5&days=7")

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(txn *models.Transaction) error {
			s.NoError(txn.Validate())
			return nil
		}).
		Times(5)

	err := handler.SeedTransactions(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"transactions_created":5`)
}

func (s *DevHandlerTestSuite) TestSeedTransactions_ForbiddenOutsideDevelopment() {
	handler := NewDevHandler(s.mockRepo, devConfig("production"))
	c, rec := s.newSeedContext("")

	err := handler.SeedTransactions(c)

	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "ACCESS_001")
}

func (s *DevHandlerTestSuite) TestSeedTransactions_CountClamped() {
	handler := NewDevHandler(s.mockRepo, devConfig("development"))
	c, rec := s.newSeedContext("?count=100000")

	s.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1000)

	err := handler.SeedTransactions(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DevHandlerTestSuite) TestSeedTransactions_SkipsFailedInserts() {
	handler := NewDevHandler(s.mockRepo, devConfig("development"))
	c, rec := s.newSeedContext("?count=3")

	gomock.InOrder(
		s.mockRepo.EXPECT().Create(gomock.Any()).Return(nil),
		s.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed")),
		s.mockRepo.EXPECT().Create(gomock.Any()).Return(nil),
	)

	err := handler.SeedTransactions(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"transactions_created":2`)
}
