package repositories

import (
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"gorm.io/gorm"
)

// SubmissionRepository defines the interface for evaluation form submissions
type SubmissionRepository interface {
	CreateSubmission(submission *models.EvaluationFormSubmission) error
	GetSubmissionByID(id string) (*models.EvaluationFormSubmission, error)
	GetSubmissionsByStatus(status string) ([]models.EvaluationFormSubmission, error)
	UpdateSubmission(submission *models.EvaluationFormSubmission) error
}

// PostgresSubmissionRepository implements SubmissionRepository for PostgreSQL
type PostgresSubmissionRepository struct {
	db *gorm.DB
}

// NewPostgresSubmissionRepository creates a new PostgresSubmissionRepository
func NewPostgresSubmissionRepository(db *gorm.DB) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{db: db}
}

func (r *PostgresSubmissionRepository) CreateSubmission(submission *models.EvaluationFormSubmission) error {
	return r.db.Create(submission).Error
}

func (r *PostgresSubmissionRepository) GetSubmissionByID(id string) (*models.EvaluationFormSubmission, error) {
	var submission models.EvaluationFormSubmission
	if err := r.db.First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *PostgresSubmissionRepository) GetSubmissionsByStatus(status string) ([]models.EvaluationFormSubmission, error) {
	var submissions []models.EvaluationFormSubmission
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *PostgresSubmissionRepository) UpdateSubmission(submission *models.EvaluationFormSubmission) error {
	return r.db.Save(submission).Error
}
