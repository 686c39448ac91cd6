package repositories

import (
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id string) (*models.Post, error)
	GetPostsByUserID(userID uint, limit, offset int) ([]models.Post, error)
	GetPostsByUserIDs(userIDs []uint, limit, offset int) ([]models.Post, error)
	DeletePost(id string) error
	IncrementLikesCount(id string) error
	DecrementLikesCount(id string) error
	IncrementCommentsCount(id string) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostgresPostRepository) GetPostByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostgresPostRepository) GetPostsByUserID(userID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostgresPostRepository) GetPostsByUserIDs(userIDs []uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	if len(userIDs) == 0 {
		return posts, nil
	}
	err := r.db.Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostgresPostRepository) DeletePost(id string) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}

func (r *PostgresPostRepository) IncrementLikesCount(id string) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
}

func (r *PostgresPostRepository) DecrementLikesCount(id string) error {
	return r.db.Model(&models.Post{}).Where("id = ? AND likes_count > 0", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error
}

func (r *PostgresPostRepository) IncrementCommentsCount(id string) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
}
