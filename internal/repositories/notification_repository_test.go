package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupNotificationRepo(t *testing.T) (NotificationRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Notification{}))
	return NewPostgresNotificationRepository(db), db
}

func draft(userID uint, entityID string) *models.Notification {
	return &models.Notification{
		UserID:     userID,
		Type:       models.NotificationPostLike,
		Title:      "New like",
		Message:    "Sam liked your post",
		EntityType: models.EntityPost,
		EntityID:   entityID,
	}
}

func TestCreateIfAbsent_IsIdempotent(t *testing.T) {
	repo, db := setupNotificationRepo(t)

	created, err := repo.CreateIfAbsent(draft(1, "post-1"))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(draft(1, "post-1"))
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateIfAbsent_DistinctKeysInsert(t *testing.T) {
	repo, db := setupNotificationRepo(t)

	_, err := repo.CreateIfAbsent(draft(1, "post-1"))
	require.NoError(t, err)
	_, err = repo.CreateIfAbsent(draft(1, "post-2"))
	require.NoError(t, err)
	_, err = repo.CreateIfAbsent(draft(2, "post-1"))
	require.NoError(t, err)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestGetByUserID_ScopedToRequestedUser(t *testing.T) {
	repo, _ := setupNotificationRepo(t)

	for i := 0; i < 3; i++ {
		_, err := repo.CreateIfAbsent(draft(1, "post-"+string(rune('a'+i))))
		require.NoError(t, err)
	}
	_, err := repo.CreateIfAbsent(draft(2, "post-x"))
	require.NoError(t, err)

	rows, total, err := repo.GetByUserID(1, 50, 0, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, n := range rows {
		assert.Equal(t, uint(1), n.UserID)
	}
}

func TestGetByUserID_UnreadOnlyAndPagination(t *testing.T) {
	repo, db := setupNotificationRepo(t)

	for i := 0; i < 5; i++ {
		_, err := repo.CreateIfAbsent(draft(1, "post-"+string(rune('a'+i))))
		require.NoError(t, err)
	}
	db.Model(&models.Notification{}).Where("entity_id = ?", "post-a").Update("is_read", true)

	rows, total, err := repo.GetByUserID(1, 2, 0, true)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, rows, 2)

	rows, _, err = repo.GetByUserID(1, 2, 4, true)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMarkAsRead_ScopedToOwner(t *testing.T) {
	repo, db := setupNotificationRepo(t)

	_, err := repo.CreateIfAbsent(draft(1, "post-1"))
	require.NoError(t, err)
	var row models.Notification
	require.NoError(t, db.First(&row).Error)

	// Someone else's mark attempt is a silent no-op.
	require.NoError(t, repo.MarkAsRead(row.ID, 2))
	var after models.Notification
	require.NoError(t, db.First(&after, row.ID).Error)
	assert.False(t, after.IsRead)

	// Owner can mark it.
	require.NoError(t, repo.MarkAsRead(row.ID, 1))
	require.NoError(t, db.First(&after, row.ID).Error)
	assert.True(t, after.IsRead)

	// Re-marking changes nothing, including the timestamp.
	require.NoError(t, repo.MarkAsRead(row.ID, 1))
	var again models.Notification
	require.NoError(t, db.First(&again, row.ID).Error)
	assert.True(t, again.IsRead)
	assert.Equal(t, after.CreatedAt, again.CreatedAt)
	assert.Equal(t, after.Message, again.Message)
}

func TestUnreadCountConsistency(t *testing.T) {
	repo, _ := setupNotificationRepo(t)

	_, err := repo.CreateIfAbsent(draft(1, "post-1"))
	require.NoError(t, err)
	_, err = repo.CreateIfAbsent(draft(1, "post-2"))
	require.NoError(t, err)

	count, err := repo.GetUnreadCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.MarkAllAsRead(1))
	count, err = repo.GetUnreadCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = repo.CreateIfAbsent(draft(1, "post-3"))
	require.NoError(t, err)
	count, err = repo.GetUnreadCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
