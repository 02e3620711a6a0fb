//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	"github.com/Isak-k/Sanbitu-FC/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest runs after each test
func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new player
func (suite *PlayerRepositoryTestSuite) TestCreate() {
	player := suite.factories.Player.Create()

	err := suite.repo.Create(player)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, player.ID)
	suite.NotZero(player.CreatedAt)
}

// TestGetByID tests retrieving a player by ID
func (suite *PlayerRepositoryTestSuite) TestGetByID() {
	player := suite.factories.Player.Create()
	suite.NoError(suite.repo.Create(player))

	found, err := suite.repo.GetByID(player.ID)

	suite.NoError(err)
	suite.Equal(player.ID, found.ID)
	suite.Equal(player.JerseyNumber, found.JerseyNumber)
}

// TestGetByIDNotFound tests retrieving a missing player
func (suite *PlayerRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetActiveByJerseyNumber tests the active-roster jersey lookup
func (suite *PlayerRepositoryTestSuite) TestGetActiveByJerseyNumber() {
	active := suite.factories.Player.WithJerseyNumber(9)
	suite.NoError(suite.repo.Create(active))

	inactive := suite.factories.Player.Inactive()
	inactive.JerseyNumber = 10
	suite.NoError(suite.repo.Create(inactive))

	found, err := suite.repo.GetActiveByJerseyNumber(9)
	suite.NoError(err)
	suite.Equal(active.ID, found.ID)

	// Inactive players do not block their number
	_, err = suite.repo.GetActiveByJerseyNumber(10)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListFilters tests position and active filters with search
func (suite *PlayerRepositoryTestSuite) TestListFilters() {
	keeper := suite.factories.Player.WithPosition(models.PositionGoalkeeper)
	keeper.FirstName = "Anders"
	suite.NoError(suite.repo.Create(keeper))

	forward := suite.factories.Player.WithPosition(models.PositionForward)
	suite.NoError(suite.repo.Create(forward))

	retired := suite.factories.Player.Inactive()
	suite.NoError(suite.repo.Create(retired))

	position := models.PositionGoalkeeper
	players, total, err := suite.repo.List(PlayerFilter{Position: &position}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(keeper.ID, players[0].ID)

	active := true
	_, total, err = suite.repo.List(PlayerFilter{Active: &active}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)

	players, total, err = suite.repo.List(PlayerFilter{Query: "anders"}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(keeper.ID, players[0].ID)
}

// TestListJerseyNumberOrder tests the jersey number sort
func (suite *PlayerRepositoryTestSuite) TestListJerseyNumberOrder() {
	second := suite.factories.Player.WithJerseyNumber(22)
	suite.NoError(suite.repo.Create(second))

	first := suite.factories.Player.WithJerseyNumber(3)
	suite.NoError(suite.repo.Create(first))

	players, _, err := suite.repo.List(PlayerFilter{SortBy: "jersey_number"}, 20, 0)

	suite.NoError(err)
	suite.Len(players, 2)
	suite.Equal(3, players[0].JerseyNumber)
	suite.Equal(22, players[1].JerseyNumber)
}

// TestUpdate tests updating a player
func (suite *PlayerRepositoryTestSuite) TestUpdate() {
	player := suite.factories.Player.Create()
	suite.NoError(suite.repo.Create(player))

	player.IsActive = false
	suite.NoError(suite.repo.Update(player))

	found, err := suite.repo.GetByID(player.ID)
	suite.NoError(err)
	suite.False(found.IsActive)
}

// TestDeleteWithDependents tests the fan-out delete across lineup entries and events
func (suite *PlayerRepositoryTestSuite) TestDeleteWithDependents() {
	match, player, entry, event := suite.factories.CreateMatchDay()

	suite.NoError(NewMatchRepository(suite.baseTestSuite.DB).Create(match))
	suite.NoError(suite.repo.Create(player))

	lineupRepo := NewLineupEntryRepository(suite.baseTestSuite.DB)
	suite.NoError(lineupRepo.Create(entry))

	eventRepo := NewMatchEventRepository(suite.baseTestSuite.DB)
	suite.NoError(eventRepo.Create(event))

	suite.NoError(suite.repo.DeleteWithDependents(player.ID))

	_, err := suite.repo.GetByID(player.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Lineup entry is gone
	_, err = lineupRepo.GetByID(entry.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Event survives with the player detached
	kept, err := eventRepo.GetByID(event.ID)
	suite.NoError(err)
	suite.Nil(kept.PlayerID)
}

// TestPlayerRepositoryTestSuite runs the test suite
func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
