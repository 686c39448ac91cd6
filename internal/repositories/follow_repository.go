package repositories

import (
	"fmt"

	"github.com/playmakerhq/playmaker/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(followerID, studentID uint) error
	IsFollowing(followerID, studentID uint) (bool, error)
	GetFollowers(studentID uint) ([]models.User, error)
	GetFollowerIDs(studentID uint) ([]uint, error)
	GetFollowedStudentIDs(followerID uint) ([]uint, error)
	GetFollowersCount(studentID uint) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *PostgresFollowRepository) DeleteFollow(followerID, studentID uint) error {
	res := r.db.Where("follower_id = ? AND student_id = ?", followerID, studentID).Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("follow relationship not found")
	}
	return nil
}

func (r *PostgresFollowRepository) IsFollowing(followerID, studentID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND student_id = ?", followerID, studentID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFollowers(studentID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("student_id = ?", studentID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowerIDs(studentID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("student_id = ?", studentID).Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *PostgresFollowRepository) GetFollowedStudentIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", followerID).Pluck("student_id", &ids).Error
	return ids, err
}

func (r *PostgresFollowRepository) GetFollowersCount(studentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}
