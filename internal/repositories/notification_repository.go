package repositories

import (
	"errors"

	"github.com/playmakerhq/playmaker/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	// CreateIfAbsent persists the notification unless a row with the same
	// (user_id, type, entity_type, entity_id) tuple already exists. A
	// duplicate is a no-op, not an error; the bool reports whether a row
	// was inserted.
	CreateIfAbsent(notification *models.Notification) (bool, error)
	GetByUserID(userID uint, limit, offset int, unreadOnly bool) ([]models.Notification, int64, error)
	GetUnreadCount(userID uint) (int64, error)
	MarkAsRead(notificationID, userID uint) error
	MarkAllAsRead(userID uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateIfAbsent(notification *models.Notification) (bool, error) {
	var existing models.Notification
	err := r.db.Where(
		"user_id = ? AND type = ? AND entity_type = ? AND entity_id = ?",
		notification.UserID, notification.Type, notification.EntityType, notification.EntityID,
	).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := r.db.Create(notification).Error; err != nil {
		// Lost the check/insert race: the unique dedup index caught a
		// concurrent writer's row, which is the same no-op outcome.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *postgresNotificationRepository) GetByUserID(userID uint, limit, offset int, unreadOnly bool) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	q := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

// MarkAsRead flips is_read on a single notification. The update is scoped to
// the owning user: marking someone else's notification affects zero rows and
// still succeeds, so existence is never leaked.
func (r *postgresNotificationRepository) MarkAsRead(notificationID, userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true).Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
