package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/api/handlers"
	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	"github.com/Isak-k/Sanbitu-FC/internal/mocks"
	"github.com/Isak-k/Sanbitu-FC/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MatchHandlerTestSuite defines the test suite for MatchHandler
type MatchHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockMatchRepositoryInterface
	router   *gin.Engine
}

// SetupTest sets up the test suite
func (suite *MatchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)

	matchService := service.NewMatchService(suite.mockRepo, validator.New())
	handler := handlers.NewMatchHandler(matchService)

	suite.router = gin.New()
	suite.router.POST("/matches", handler.CreateMatch)
	suite.router.GET("/matches", handler.ListMatches)
	suite.router.GET("/matches/upcoming", handler.ListUpcomingMatches)
	suite.router.GET("/matches/results", handler.ListResults)
	suite.router.GET("/matches/:id", handler.GetMatch)
	suite.router.GET("/matches/:id/details", handler.GetMatchDetails)
	suite.router.PUT("/matches/:id", handler.UpdateMatch)
	suite.router.PUT("/matches/:id/result", handler.RecordResult)
	suite.router.DELETE("/matches/:id", handler.DeleteMatch)
}

// TearDownTest cleans up after each test
func (suite *MatchHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MatchHandlerTestSuite) request(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestCreateMatch tests scheduling a fixture over HTTP
func (suite *MatchHandlerTestSuite) TestCreateMatch() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	recorder := suite.request(http.MethodPost, "/matches", service.CreateMatchRequest{
		Opponent:    "Riverton Rovers",
		KickoffAt:   time.Now().Add(7 * 24 * time.Hour),
		Venue:       "home",
		Competition: "League",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.MatchResponse
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(suite.T(), "scheduled", response.Status)
}

// TestCreateMatchInvalidVenue tests the 400 mapping for a bad venue
func (suite *MatchHandlerTestSuite) TestCreateMatchInvalidVenue() {
	recorder := suite.request(http.MethodPost, "/matches", service.CreateMatchRequest{
		Opponent:  "Riverton Rovers",
		KickoffAt: time.Now(),
		Venue:     "neutral",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetMatchNotFound tests the 404 mapping
func (suite *MatchHandlerTestSuite) TestGetMatchNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	recorder := suite.request(http.MethodGet, "/matches/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestRecordResult tests recording a score over HTTP
func (suite *MatchHandlerTestSuite) TestRecordResult() {
	id := uuid.New()
	match := &models.Match{
		BaseModel: models.BaseModel{ID: id},
		Opponent:  "Riverton Rovers",
		Venue:     models.VenueHome,
		Status:    models.MatchStatusScheduled,
	}
	home, away := 2, 0

	suite.mockRepo.EXPECT().GetByID(id).Return(match, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	recorder := suite.request(http.MethodPut, "/matches/"+id.String()+"/result", service.RecordResultRequest{
		HomeGoals: &home,
		AwayGoals: &away,
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.MatchResponse
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(suite.T(), "played", response.Status)
	assert.Equal(suite.T(), 2, *response.HomeGoals)
}

// TestRecordResultCancelledMatch tests the 400 mapping for a cancelled match
func (suite *MatchHandlerTestSuite) TestRecordResultCancelledMatch() {
	id := uuid.New()
	match := &models.Match{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.MatchStatusCancelled,
	}
	home, away := 1, 0

	suite.mockRepo.EXPECT().GetByID(id).Return(match, nil).Times(1)

	recorder := suite.request(http.MethodPut, "/matches/"+id.String()+"/result", service.RecordResultRequest{
		HomeGoals: &home,
		AwayGoals: &away,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestListUpcomingMatches tests the upcoming fixtures endpoint
func (suite *MatchHandlerTestSuite) TestListUpcomingMatches() {
	matches := []models.Match{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Opponent: "Eastfield United", Venue: models.VenueAway, Status: models.MatchStatusScheduled},
	}

	suite.mockRepo.EXPECT().ListUpcoming(5).Return(matches, nil).Times(1)

	recorder := suite.request(http.MethodGet, "/matches/upcoming", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(suite.T(), response["matches"], 1)
}

// TestDeleteMatch tests deleting over HTTP
func (suite *MatchHandlerTestSuite) TestDeleteMatch() {
	id := uuid.New()
	match := &models.Match{BaseModel: models.BaseModel{ID: id}}

	suite.mockRepo.EXPECT().GetByID(id).Return(match, nil).Times(1)
	suite.mockRepo.EXPECT().DeleteWithDependents(id).Return(nil).Times(1)

	recorder := suite.request(http.MethodDelete, "/matches/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestMatchHandlerTestSuite runs the test suite
func TestMatchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}
