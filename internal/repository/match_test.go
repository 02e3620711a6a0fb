//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	"github.com/Isak-k/Sanbitu-FC/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MatchRepositoryTestSuite tests the MatchRepository
type MatchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MatchRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MatchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMatchRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *MatchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MatchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest runs after each test
func (suite *MatchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests creating and retrieving a match
func (suite *MatchRepositoryTestSuite) TestCreateAndGet() {
	match := suite.factories.Match.Create()

	suite.NoError(suite.repo.Create(match))

	found, err := suite.repo.GetByID(match.ID)
	suite.NoError(err)
	suite.Equal(match.Opponent, found.Opponent)
	suite.Equal(models.MatchStatusScheduled, found.Status)
}

// TestGetWithDetails tests preloading the lineup and minute-ordered events
func (suite *MatchRepositoryTestSuite) TestGetWithDetails() {
	match, player, entry, _ := suite.factories.CreateMatchDay()
	suite.NoError(suite.repo.Create(match))
	suite.NoError(NewPlayerRepository(suite.baseTestSuite.DB).Create(player))
	suite.NoError(NewLineupEntryRepository(suite.baseTestSuite.DB).Create(entry))

	eventRepo := NewMatchEventRepository(suite.baseTestSuite.DB)
	late := suite.factories.MatchEvent.Goal(match.ID, &player.ID, 80)
	early := suite.factories.MatchEvent.Goal(match.ID, &player.ID, 5)
	suite.NoError(eventRepo.Create(late))
	suite.NoError(eventRepo.Create(early))

	found, err := suite.repo.GetWithDetails(match.ID)

	suite.NoError(err)
	suite.Len(found.LineupEntries, 1)
	suite.Equal(player.ID, found.LineupEntries[0].Player.ID)
	suite.Len(found.Events, 2)
	suite.Equal(5, found.Events[0].Minute) // Minute order
	suite.Equal(80, found.Events[1].Minute)
}

// TestListStatusFilter tests filtering matches by status
func (suite *MatchRepositoryTestSuite) TestListStatusFilter() {
	suite.NoError(suite.repo.Create(suite.factories.Match.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Match.Played(2, 1)))

	status := models.MatchStatusPlayed
	matches, total, err := suite.repo.List(MatchFilter{Status: &status}, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(models.MatchStatusPlayed, matches[0].Status)
}

// TestListDateRange tests the kickoff window filter
func (suite *MatchRepositoryTestSuite) TestListDateRange() {
	near := suite.factories.Match.WithKickoff(time.Now().Add(24 * time.Hour))
	far := suite.factories.Match.WithKickoff(time.Now().Add(60 * 24 * time.Hour))
	suite.NoError(suite.repo.Create(near))
	suite.NoError(suite.repo.Create(far))

	from := time.Now()
	to := time.Now().Add(7 * 24 * time.Hour)
	matches, total, err := suite.repo.List(MatchFilter{From: &from, To: &to}, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(near.ID, matches[0].ID)
}

// TestListUpcoming tests that only future scheduled fixtures appear, soonest first
func (suite *MatchRepositoryTestSuite) TestListUpcoming() {
	nextWeek := suite.factories.Match.WithKickoff(time.Now().Add(7 * 24 * time.Hour))
	tomorrow := suite.factories.Match.WithKickoff(time.Now().Add(24 * time.Hour))
	past := suite.factories.Match.Played(1, 1)
	cancelled := suite.factories.Match.WithKickoff(time.Now().Add(48 * time.Hour))
	cancelled.Status = models.MatchStatusCancelled

	for _, m := range []*models.Match{nextWeek, tomorrow, past, cancelled} {
		suite.NoError(suite.repo.Create(m))
	}

	matches, err := suite.repo.ListUpcoming(5)

	suite.NoError(err)
	suite.Len(matches, 2)
	suite.Equal(tomorrow.ID, matches[0].ID)
	suite.Equal(nextWeek.ID, matches[1].ID)
}

// TestListResults tests that played matches come back newest first
func (suite *MatchRepositoryTestSuite) TestListResults() {
	older := suite.factories.Match.Played(0, 2)
	older.KickoffAt = time.Now().Add(-14 * 24 * time.Hour)
	recent := suite.factories.Match.Played(3, 1)
	suite.NoError(suite.repo.Create(older))
	suite.NoError(suite.repo.Create(recent))
	suite.NoError(suite.repo.Create(suite.factories.Match.Create())) // Scheduled, excluded

	matches, total, err := suite.repo.ListResults(20, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal(recent.ID, matches[0].ID)
	suite.Equal(older.ID, matches[1].ID)
}

// TestDeleteWithDependents tests the fan-out delete across lineup and events
func (suite *MatchRepositoryTestSuite) TestDeleteWithDependents() {
	match, player, entry, event := suite.factories.CreateMatchDay()
	suite.NoError(suite.repo.Create(match))
	suite.NoError(NewPlayerRepository(suite.baseTestSuite.DB).Create(player))

	lineupRepo := NewLineupEntryRepository(suite.baseTestSuite.DB)
	suite.NoError(lineupRepo.Create(entry))

	eventRepo := NewMatchEventRepository(suite.baseTestSuite.DB)
	suite.NoError(eventRepo.Create(event))

	suite.NoError(suite.repo.DeleteWithDependents(match.ID))

	_, err := suite.repo.GetByID(match.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = lineupRepo.GetByID(entry.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = eventRepo.GetByID(event.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateScore tests persisting a recorded result
func (suite *MatchRepositoryTestSuite) TestUpdateScore() {
	match := suite.factories.Match.Create()
	suite.NoError(suite.repo.Create(match))

	home, away := 2, 2
	match.Status = models.MatchStatusPlayed
	match.HomeGoals = &home
	match.AwayGoals = &away
	suite.NoError(suite.repo.Update(match))

	found, err := suite.repo.GetByID(match.ID)
	suite.NoError(err)
	suite.Equal(models.MatchStatusPlayed, found.Status)
	suite.Equal(2, *found.HomeGoals)
}

// TestMatchRepositoryTestSuite runs the test suite
func TestMatchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MatchRepositoryTestSuite))
}
