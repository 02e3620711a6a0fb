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

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByEmail tests creating a user and looking it up by email
func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmail() {
	user := suite.factories.User.Create()

	suite.NoError(suite.repo.Create(user))
	suite.NotEqual(uuid.Nil, user.ID)

	found, err := suite.repo.GetByEmail(user.Email)
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestCreateDuplicateEmail tests the email unique constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.WithEmail("taken@sanbitufc.test")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.User.WithEmail("taken@sanbitufc.test")
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetAllRoleFilter tests the role filter
func (suite *UserRepositoryTestSuite) TestGetAllRoleFilter() {
	suite.NoError(suite.repo.Create(suite.factories.User.Admin()))
	suite.NoError(suite.repo.Create(suite.factories.User.Create()))
	suite.NoError(suite.repo.Create(suite.factories.User.Create()))

	admin := models.UserRoleAdmin
	users, total, err := suite.repo.GetAll(&admin, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(models.UserRoleAdmin, users[0].Role)

	_, total, err = suite.repo.GetAll(nil, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
}

// TestCountActiveAdmins tests the active administrator count
func (suite *UserRepositoryTestSuite) TestCountActiveAdmins() {
	suite.NoError(suite.repo.Create(suite.factories.User.Admin()))

	inactiveAdmin := suite.factories.User.Admin()
	inactiveAdmin.IsActive = false
	suite.NoError(suite.repo.Create(inactiveAdmin))

	suite.NoError(suite.repo.Create(suite.factories.User.Create())) // Member

	total, err := suite.repo.CountActiveAdmins()

	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestCount tests the total user count used by the bootstrap guard
func (suite *UserRepositoryTestSuite) TestCount() {
	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(0), total)

	suite.NoError(suite.repo.Create(suite.factories.User.Create()))

	total, err = suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestUpdate tests persisting a role change
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	user.Role = models.UserRoleAdmin
	suite.NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(models.UserRoleAdmin, found.Role)
}

// TestDelete tests deleting a user
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.Delete(user.ID))

	_, err := suite.repo.GetByID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
