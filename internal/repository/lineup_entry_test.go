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

// LineupEntryRepositoryTestSuite tests the LineupEntryRepository
type LineupEntryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LineupEntryRepository
	playerRepo    *PlayerRepository
	matchRepo     *MatchRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LineupEntryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLineupEntryRepository(suite.baseTestSuite.DB)
	suite.playerRepo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.matchRepo = NewMatchRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *LineupEntryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LineupEntryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest runs after each test
func (suite *LineupEntryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LineupEntryRepositoryTestSuite) createMatchWithPlayers(count int) (*models.Match, []*models.Player) {
	match := suite.factories.Match.Create()
	suite.NoError(suite.matchRepo.Create(match))

	players := make([]*models.Player, count)
	for i := range players {
		players[i] = suite.factories.Player.Create()
		suite.NoError(suite.playerRepo.Create(players[i]))
	}
	return match, players
}

// TestCreateAndGetByMatchAndPlayer tests the per-player lookup
func (suite *LineupEntryRepositoryTestSuite) TestCreateAndGetByMatchAndPlayer() {
	match, players := suite.createMatchWithPlayers(1)
	entry := suite.factories.LineupEntry.Create(match.ID, players[0].ID, players[0].JerseyNumber)

	suite.NoError(suite.repo.Create(entry))

	found, err := suite.repo.GetByMatchAndPlayer(match.ID, players[0].ID)
	suite.NoError(err)
	suite.Equal(entry.ID, found.ID)

	_, err = suite.repo.GetByMatchAndPlayer(match.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListByMatchStartersFirst tests the starters-then-substitutes ordering
func (suite *LineupEntryRepositoryTestSuite) TestListByMatchStartersFirst() {
	match, players := suite.createMatchWithPlayers(3)

	sub := suite.factories.LineupEntry.Substitute(match.ID, players[0].ID, players[0].JerseyNumber)
	starterHigh := suite.factories.LineupEntry.Create(match.ID, players[1].ID, 20)
	starterLow := suite.factories.LineupEntry.Create(match.ID, players[2].ID, 4)

	for _, e := range []*models.LineupEntry{sub, starterHigh, starterLow} {
		suite.NoError(suite.repo.Create(e))
	}

	entries, err := suite.repo.ListByMatch(match.ID)

	suite.NoError(err)
	suite.Len(entries, 3)
	suite.Equal(models.LineupRoleStarting, entries[0].Role)
	suite.Equal(4, entries[0].ShirtNumber) // Shirt number order within role
	suite.Equal(20, entries[1].ShirtNumber)
	suite.Equal(models.LineupRoleSubstitute, entries[2].Role)
	// Player association is preloaded
	suite.Equal(players[2].ID, entries[0].Player.ID)
}

// TestCountStarting tests counting only starting entries
func (suite *LineupEntryRepositoryTestSuite) TestCountStarting() {
	match, players := suite.createMatchWithPlayers(3)

	suite.NoError(suite.repo.Create(suite.factories.LineupEntry.Create(match.ID, players[0].ID, 1)))
	suite.NoError(suite.repo.Create(suite.factories.LineupEntry.Create(match.ID, players[1].ID, 2)))
	suite.NoError(suite.repo.Create(suite.factories.LineupEntry.Substitute(match.ID, players[2].ID, 3)))

	total, err := suite.repo.CountStarting(match.ID)

	suite.NoError(err)
	suite.Equal(int64(2), total)
}

// TestUpdateRole tests promoting a substitute
func (suite *LineupEntryRepositoryTestSuite) TestUpdateRole() {
	match, players := suite.createMatchWithPlayers(1)
	entry := suite.factories.LineupEntry.Substitute(match.ID, players[0].ID, players[0].JerseyNumber)
	suite.NoError(suite.repo.Create(entry))

	entry.Role = models.LineupRoleStarting
	suite.NoError(suite.repo.Update(entry))

	found, err := suite.repo.GetByID(entry.ID)
	suite.NoError(err)
	suite.Equal(models.LineupRoleStarting, found.Role)
}

// TestDelete tests removing an entry
func (suite *LineupEntryRepositoryTestSuite) TestDelete() {
	match, players := suite.createMatchWithPlayers(1)
	entry := suite.factories.LineupEntry.Create(match.ID, players[0].ID, players[0].JerseyNumber)
	suite.NoError(suite.repo.Create(entry))

	suite.NoError(suite.repo.Delete(entry.ID))

	_, err := suite.repo.GetByID(entry.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDuplicatePlayerRejected tests the unique match/player constraint
func (suite *LineupEntryRepositoryTestSuite) TestDuplicatePlayerRejected() {
	match, players := suite.createMatchWithPlayers(1)

	first := suite.factories.LineupEntry.Create(match.ID, players[0].ID, players[0].JerseyNumber)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.LineupEntry.Substitute(match.ID, players[0].ID, players[0].JerseyNumber)
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestLineupEntryRepositoryTestSuite runs the test suite
func TestLineupEntryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LineupEntryRepositoryTestSuite))
}
