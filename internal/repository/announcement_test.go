//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AnnouncementRepositoryTestSuite tests the AnnouncementRepository
type AnnouncementRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AnnouncementRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AnnouncementRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAnnouncementRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *AnnouncementRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AnnouncementRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest runs after each test
func (suite *AnnouncementRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithAuthor tests creating an announcement attributed to a user
func (suite *AnnouncementRepositoryTestSuite) TestCreateWithAuthor() {
	author := suite.factories.User.Admin()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(author))

	announcement := suite.factories.Announcement.Create()
	announcement.AuthorID = &author.ID

	suite.NoError(suite.repo.Create(announcement))

	found, err := suite.repo.GetByID(announcement.ID)
	suite.NoError(err)
	suite.Equal(author.ID, *found.AuthorID)
	suite.NotNil(found.Author) // Preloaded
	suite.Equal(author.Email, found.Author.Email)
}

// TestListPinnedFirstThenNewest tests the feed ordering
func (suite *AnnouncementRepositoryTestSuite) TestListPinnedFirstThenNewest() {
	oldest := suite.factories.Announcement.Create()
	oldest.PublishedAt = time.Now().AddDate(0, 0, -10)
	newest := suite.factories.Announcement.Create()
	pinned := suite.factories.Announcement.Pinned()
	pinned.PublishedAt = time.Now().AddDate(0, 0, -30)

	suite.NoError(suite.repo.Create(oldest))
	suite.NoError(suite.repo.Create(newest))
	suite.NoError(suite.repo.Create(pinned))

	announcements, total, err := suite.repo.List(nil, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	// Pinned leads even though it is the oldest
	suite.Equal(pinned.ID, announcements[0].ID)
	suite.Equal(newest.ID, announcements[1].ID)
	suite.Equal(oldest.ID, announcements[2].ID)
}

// TestListPinnedFilter tests filtering down to pinned announcements
func (suite *AnnouncementRepositoryTestSuite) TestListPinnedFilter() {
	suite.NoError(suite.repo.Create(suite.factories.Announcement.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Announcement.Pinned()))

	pinned := true
	announcements, total, err := suite.repo.List(&pinned, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.True(announcements[0].Pinned)
}

// TestUpdateAndDelete tests the remaining mutations
func (suite *AnnouncementRepositoryTestSuite) TestUpdateAndDelete() {
	announcement := suite.factories.Announcement.Create()
	suite.NoError(suite.repo.Create(announcement))

	announcement.Pinned = true
	suite.NoError(suite.repo.Update(announcement))

	found, err := suite.repo.GetByID(announcement.ID)
	suite.NoError(err)
	suite.True(found.Pinned)

	suite.NoError(suite.repo.Delete(announcement.ID))
	_, err = suite.repo.GetByID(announcement.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAnnouncementRepositoryTestSuite runs the test suite
func TestAnnouncementRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementRepositoryTestSuite))
}
