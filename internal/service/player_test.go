package service_test

import (
	"testing"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	apperrors "github.com/Isak-k/Sanbitu-FC/internal/errors"
	"github.com/Isak-k/Sanbitu-FC/internal/mocks"
	"github.com/Isak-k/Sanbitu-FC/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PlayerServiceTestSuite defines the test suite for PlayerService
type PlayerServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockPlayerRepositoryInterface
	mockEventRepo *mocks.MockMatchEventRepositoryInterface
	playerService *service.PlayerService
	validator     *validator.Validate
}

// SetupTest sets up the test suite
func (suite *PlayerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockMatchEventRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.playerService = service.NewPlayerService(suite.mockRepo, suite.mockEventRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *PlayerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePlayer tests creating a player
func (suite *PlayerServiceTestSuite) TestCreatePlayer() {
	req := &service.CreatePlayerRequest{
		FirstName:    "Jonas",
		LastName:     "Berg",
		JerseyNumber: 9,
		Position:     "forward",
	}

	suite.mockRepo.EXPECT().
		GetActiveByJerseyNumber(9).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.playerService.CreatePlayer(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Jonas Berg", response.FullName)
	assert.Equal(suite.T(), 9, response.JerseyNumber)
	assert.Equal(suite.T(), "forward", response.Position)
	assert.True(suite.T(), response.IsActive) // Default
}

// TestCreatePlayerInvalidPosition tests creating a player with an unknown position
func (suite *PlayerServiceTestSuite) TestCreatePlayerInvalidPosition() {
	req := &service.CreatePlayerRequest{
		FirstName:    "Jonas",
		LastName:     "Berg",
		JerseyNumber: 9,
		Position:     "striker",
	}

	response, err := suite.playerService.CreatePlayer(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPosition)
}

// TestCreatePlayerJerseyNumberTaken tests jersey uniqueness among active players
func (suite *PlayerServiceTestSuite) TestCreatePlayerJerseyNumberTaken() {
	req := &service.CreatePlayerRequest{
		FirstName:    "Jonas",
		LastName:     "Berg",
		JerseyNumber: 9,
		Position:     "forward",
	}

	existing := &models.Player{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		JerseyNumber: 9,
		IsActive:     true,
	}

	suite.mockRepo.EXPECT().
		GetActiveByJerseyNumber(9).
		Return(existing, nil).
		Times(1)

	response, err := suite.playerService.CreatePlayer(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrJerseyNumberTaken)
}

// TestCreateInactivePlayerSkipsJerseyCheck tests that inactive players may reuse numbers
func (suite *PlayerServiceTestSuite) TestCreateInactivePlayerSkipsJerseyCheck() {
	inactive := false
	req := &service.CreatePlayerRequest{
		FirstName:    "Old",
		LastName:     "Timer",
		JerseyNumber: 9,
		Position:     "defender",
		IsActive:     &inactive,
	}

	// No GetActiveByJerseyNumber expectation: the check must be skipped
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.playerService.CreatePlayer(req)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.IsActive)
}

// TestGetPlayerByIDNotFound tests retrieving a missing player
func (suite *PlayerServiceTestSuite) TestGetPlayerByIDNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.playerService.GetPlayerByID(id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotFound)
}

// TestListPlayers tests listing with a position filter
func (suite *PlayerServiceTestSuite) TestListPlayers() {
	players := []models.Player{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "A", LastName: "One", JerseyNumber: 1, Position: models.PositionGoalkeeper, IsActive: true},
		{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "B", LastName: "Two", JerseyNumber: 12, Position: models.PositionGoalkeeper, IsActive: true},
	}

	suite.mockRepo.EXPECT().
		List(gomock.Any(), 20, 0).
		Return(players, int64(2), nil).
		Times(1)

	responses, total, err := suite.playerService.ListPlayers(&service.ListPlayersQuery{
		Position: "goalkeeper",
		Limit:    20,
		Offset:   0,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), total)
	assert.Len(suite.T(), responses, 2)
}

// TestListPlayersInvalidPosition tests listing with an unknown position filter
func (suite *PlayerServiceTestSuite) TestListPlayersInvalidPosition() {
	_, _, err := suite.playerService.ListPlayers(&service.ListPlayersQuery{Position: "libero"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPosition)
}

// TestUpdatePlayerJerseyNumberChange tests changing to a free jersey number
func (suite *PlayerServiceTestSuite) TestUpdatePlayerJerseyNumberChange() {
	id := uuid.New()
	player := &models.Player{
		BaseModel:    models.BaseModel{ID: id},
		FirstName:    "Jonas",
		LastName:     "Berg",
		JerseyNumber: 9,
		Position:     models.PositionForward,
		IsActive:     true,
	}
	newNumber := 11

	suite.mockRepo.EXPECT().GetByID(id).Return(player, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetActiveByJerseyNumber(11).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.playerService.UpdatePlayer(id, &service.UpdatePlayerRequest{JerseyNumber: &newNumber})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 11, response.JerseyNumber)
}

// TestUpdatePlayerJerseyNumberTaken tests changing to a number worn by another active player
func (suite *PlayerServiceTestSuite) TestUpdatePlayerJerseyNumberTaken() {
	id := uuid.New()
	player := &models.Player{
		BaseModel:    models.BaseModel{ID: id},
		JerseyNumber: 9,
		Position:     models.PositionForward,
		IsActive:     true,
	}
	wearer := &models.Player{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		JerseyNumber: 11,
		IsActive:     true,
	}
	newNumber := 11

	suite.mockRepo.EXPECT().GetByID(id).Return(player, nil).Times(1)
	suite.mockRepo.EXPECT().GetActiveByJerseyNumber(11).Return(wearer, nil).Times(1)

	response, err := suite.playerService.UpdatePlayer(id, &service.UpdatePlayerRequest{JerseyNumber: &newNumber})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrJerseyNumberTaken)
}

// TestReactivatePlayerNumberConflict tests that reactivation re-checks the jersey number
func (suite *PlayerServiceTestSuite) TestReactivatePlayerNumberConflict() {
	id := uuid.New()
	player := &models.Player{
		BaseModel:    models.BaseModel{ID: id},
		JerseyNumber: 9,
		Position:     models.PositionForward,
		IsActive:     false,
	}
	wearer := &models.Player{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		JerseyNumber: 9,
		IsActive:     true,
	}
	active := true

	suite.mockRepo.EXPECT().GetByID(id).Return(player, nil).Times(1)
	suite.mockRepo.EXPECT().GetActiveByJerseyNumber(9).Return(wearer, nil).Times(1)

	response, err := suite.playerService.UpdatePlayer(id, &service.UpdatePlayerRequest{IsActive: &active})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrJerseyNumberTaken)
}

// TestDeletePlayer tests deleting a player with dependents
func (suite *PlayerServiceTestSuite) TestDeletePlayer() {
	id := uuid.New()
	player := &models.Player{BaseModel: models.BaseModel{ID: id}}

	suite.mockRepo.EXPECT().GetByID(id).Return(player, nil).Times(1)
	suite.mockRepo.EXPECT().DeleteWithDependents(id).Return(nil).Times(1)

	err := suite.playerService.DeletePlayer(id)

	assert.NoError(suite.T(), err)
}

// TestDeletePlayerNotFound tests deleting a missing player
func (suite *PlayerServiceTestSuite) TestDeletePlayerNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.playerService.DeletePlayer(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotFound)
}

// TestGetPlayerEvents tests listing a player's recorded events
func (suite *PlayerServiceTestSuite) TestGetPlayerEvents() {
	id := uuid.New()
	player := &models.Player{BaseModel: models.BaseModel{ID: id}}
	events := []models.MatchEvent{
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchID: uuid.New(), PlayerID: &id, Type: models.EventTypeGoal, Minute: 12},
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(player, nil).Times(1)
	suite.mockEventRepo.EXPECT().ListByPlayer(id, 20, 0).Return(events, int64(1), nil).Times(1)

	responses, total, err := suite.playerService.GetPlayerEvents(id, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), "goal", responses[0].Type)
}

// TestPlayerServiceTestSuite runs the test suite
func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
