package notifications

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type engineDB struct {
	gorm *gorm.DB
}

func setupEngineDB(t *testing.T) *engineDB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.School{},
		&models.StudentProfile{},
		&models.SchoolAdminProfile{},
		&models.SystemAdminProfile{},
		&models.ViewerProfile{},
		&models.ScoutProfile{},
		&models.ScoutAdmin{},
		&models.Follow{},
		&models.Notification{},
	))
	return &engineDB{gorm: db}
}

func (db *engineDB) addUser(t *testing.T, u models.User) {
	t.Helper()
	require.NoError(t, db.gorm.Create(&u).Error)
}

func (db *engineDB) addFollow(t *testing.T, followerID, studentID uint) {
	t.Helper()
	require.NoError(t, db.gorm.Create(&models.Follow{FollowerID: followerID, StudentID: studentID}).Error)
}

func (db *engineDB) notifications(t *testing.T) []models.Notification {
	t.Helper()
	var rows []models.Notification
	require.NoError(t, db.gorm.Find(&rows).Error)
	return rows
}

func newCoordinator(t *testing.T, db *engineDB, store Store) *Coordinator {
	t.Helper()
	userRepo := repositories.NewPostgresUserRepository(db.gorm)
	followRepo := repositories.NewPostgresFollowRepository(db.gorm)
	profileRepo := repositories.NewPostgresProfileRepository(db.gorm)
	schoolRepo := repositories.NewPostgresSchoolRepository(db.gorm)
	if store == nil {
		store = repositories.NewPostgresNotificationRepository(db.gorm)
	}
	return NewCoordinator(
		SyncDispatcher{},
		NewRecipientResolver(followRepo, userRepo),
		NewIdentityResolver(userRepo, profileRepo),
		store,
		schoolRepo,
		zap.NewNop(),
	)
}

func TestPostCreated_FanOutToFollowersOnly(t *testing.T) {
	db := setupEngineDB(t)
	db.addUser(t, models.User{ID: 10, Name: "Alex Mori", Role: models.RoleStudent, Email: "a@x.com"})
	db.addUser(t, models.User{ID: 11, Name: "Blair Quinn", Role: models.RoleViewer, Email: "b@x.com"})
	db.addUser(t, models.User{ID: 12, Name: "Casey Holt", Role: models.RoleViewer, Email: "c@x.com"})
	db.addFollow(t, 11, 10)
	db.addFollow(t, 12, 10)

	c := newCoordinator(t, db, nil)
	c.PostCreated(10, "post-1")

	rows := db.notifications(t)
	require.Len(t, rows, 2)
	recipients := map[uint]bool{}
	for _, n := range rows {
		recipients[n.UserID] = true
		assert.Equal(t, models.NotificationFollowingPosted, n.Type)
		assert.Equal(t, models.EntityPost, n.EntityType)
		assert.Equal(t, "post-1", n.EntityID)
		assert.Contains(t, n.Message, "Alex Mori")
	}
	assert.True(t, recipients[11])
	assert.True(t, recipients[12])
	assert.False(t, recipients[10])

	// Re-firing the same event creates zero additional rows.
	c.PostCreated(10, "post-1")
	assert.Len(t, db.notifications(t), 2)
}

func TestPostLiked_SelfLikeDoesNotNotify(t *testing.T) {
	db := setupEngineDB(t)
	db.addUser(t, models.User{ID: 10, Name: "Alex Mori", Role: models.RoleStudent, Email: "a@x.com"})

	c := newCoordinator(t, db, nil)
	c.PostLiked(10, 10, "post-1")

	assert.Empty(t, db.notifications(t))
}

func TestPostLiked_OncePerLikerPerPost(t *testing.T) {
	db := setupEngineDB(t)
	db.addUser(t, models.User{ID: 10, Name: "Alex Mori", Role: models.RoleStudent, Email: "a@x.com"})
	db.addUser(t, models.User{ID: 11, Name: "Blair Quinn", Role: models.RoleViewer, Email: "b@x.com"})

	c := newCoordinator(t, db, nil)
	c.PostLiked(11, 10, "post-1")
	c.PostLiked(11, 10, "post-1") // unlike/re-like cycle is suppressed

	rows := db.notifications(t)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(10), rows[0].UserID)
	assert.Contains(t, rows[0].Message, "Blair Quinn")
}

func TestSchoolPaymentRecorded_NotifiesSchoolAndSystemAdmins(t *testing.T) {
	db := setupEngineDB(t)
	school1, school2 := uint(1), uint(2)
	require.NoError(t, db.gorm.Create(&models.School{ID: 1, Name: "Ridgeview High"}).Error)
	db.addUser(t, models.User{ID: 21, Name: "Admin One", Role: models.RoleSchoolAdmin, SchoolID: &school1, Email: "1@x.com"})
	db.addUser(t, models.User{ID: 22, Name: "Admin Two", Role: models.RoleSchoolAdmin, SchoolID: &school1, Email: "2@x.com"})
	db.addUser(t, models.User{ID: 23, Name: "Other School", Role: models.RoleSchoolAdmin, SchoolID: &school2, Email: "3@x.com"})
	db.addUser(t, models.User{ID: 24, Name: "Sys Admin", Role: models.RoleSystemAdmin, Email: "4@x.com"})
	db.addUser(t, models.User{ID: 30, Name: "Recorder", Role: models.RoleSchoolAdmin, SchoolID: &school2, Email: "5@x.com"})

	c := newCoordinator(t, db, nil)
	c.SchoolPaymentRecorded(30, 1, "pay-1", models.PaymentKindRenewal, 1500)

	rows := db.notifications(t)
	require.Len(t, rows, 3)
	for _, n := range rows {
		assert.Equal(t, models.EntityPayment, n.EntityType)
		assert.Equal(t, "pay-1", n.EntityID)
		assert.Contains(t, n.Message, "Ridgeview High")
		assert.Contains(t, n.Message, "1500.00")
		assert.Contains(t, n.Message, "renewal")
	}
}

func TestFanOut_MessageNeverContainsMissingNameArtifacts(t *testing.T) {
	db := setupEngineDB(t)
	db.addUser(t, models.User{ID: 10, Name: "Alex Mori", Role: models.RoleStudent, Email: "a@x.com"})

	c := newCoordinator(t, db, nil)
	// Actor 999 has no account record anywhere.
	c.PostLiked(999, 10, "post-1")

	rows := db.notifications(t)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Message, FallbackDisplayName)
	assert.NotContains(t, rows[0].Message, "undefined")
	assert.NotContains(t, rows[0].Message, "  ")
}

func TestFormSubmitted_UnionExcludesActor(t *testing.T) {
	db := setupEngineDB(t)
	db.addUser(t, models.User{ID: 40, Name: "Student S", Role: models.RoleStudent, Email: "s@x.com"})
	db.addUser(t, models.User{ID: 41, Name: "Sys A", Role: models.RoleSystemAdmin, Email: "sa@x.com"})
	db.addUser(t, models.User{ID: 42, Name: "Scout A", Role: models.RoleScoutAdmin, Email: "ca@x.com"})

	c := newCoordinator(t, db, nil)
	c.FormSubmitted(40, "sub-1")

	rows := db.notifications(t)
	require.Len(t, rows, 2)
	for _, n := range rows {
		assert.Equal(t, models.NotificationFormSubmitted, n.Type)
		assert.Equal(t, models.EntitySubmission, n.EntityType)
		assert.NotEqual(t, uint(40), n.UserID)
	}
}

func TestSubmissionReviewed_NotifiesStudent(t *testing.T) {
	db := setupEngineDB(t)
	db.addUser(t, models.User{ID: 50, Name: "Scout R", Role: models.RoleScout, Email: "r@x.com"})
	db.addUser(t, models.User{ID: 51, Name: "Student T", Role: models.RoleStudent, Email: "t@x.com"})

	c := newCoordinator(t, db, nil)
	c.SubmissionReviewed(50, 51, "sub-2", models.SubmissionStatusReviewed)

	rows := db.notifications(t)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(51), rows[0].UserID)
	assert.Contains(t, rows[0].Message, "Scout R")
	assert.Contains(t, rows[0].Message, models.SubmissionStatusReviewed)
}

func TestScoutAssigned_NotifiesScoutAndStudent(t *testing.T) {
	db := setupEngineDB(t)
	db.addUser(t, models.User{ID: 60, Name: "Assigner", Role: models.RoleScoutAdmin, Email: "as@x.com"})
	db.addUser(t, models.User{ID: 61, Name: "Scout X", Role: models.RoleScout, Email: "sx@x.com"})
	db.addUser(t, models.User{ID: 62, Name: "Student Y", Role: models.RoleStudent, Email: "sy@x.com"})

	c := newCoordinator(t, db, nil)
	c.ScoutAssigned(60, 61, 62, "sub-3")

	rows := db.notifications(t)
	require.Len(t, rows, 2)
	recipients := map[uint]bool{}
	for _, n := range rows {
		recipients[n.UserID] = true
	}
	assert.True(t, recipients[61])
	assert.True(t, recipients[62])
}

// flakyStore fails writes for one recipient and delegates the rest.
type flakyStore struct {
	inner    Store
	failFor  uint
	attempts int
}

func (s *flakyStore) CreateIfAbsent(n *models.Notification) (bool, error) {
	s.attempts++
	if n.UserID == s.failFor {
		return false, errors.New("store unavailable")
	}
	return s.inner.CreateIfAbsent(n)
}

func TestFanOut_OneFailureDoesNotAbortOthers(t *testing.T) {
	db := setupEngineDB(t)
	db.addUser(t, models.User{ID: 10, Name: "Alex Mori", Role: models.RoleStudent, Email: "a@x.com"})
	db.addUser(t, models.User{ID: 11, Name: "Blair Quinn", Role: models.RoleViewer, Email: "b@x.com"})
	db.addUser(t, models.User{ID: 12, Name: "Casey Holt", Role: models.RoleViewer, Email: "c@x.com"})
	db.addFollow(t, 11, 10)
	db.addFollow(t, 12, 10)

	store := &flakyStore{inner: repositories.NewPostgresNotificationRepository(db.gorm), failFor: 11}
	c := newCoordinator(t, db, store)
	c.PostCreated(10, "post-1")

	assert.Equal(t, 2, store.attempts)
	rows := db.notifications(t)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(12), rows[0].UserID)
}
