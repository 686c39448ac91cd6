package repositories

import (
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"gorm.io/gorm"
)

// SchoolRepository defines the interface for school data operations
type SchoolRepository interface {
	CreateSchool(school *models.School) error
	GetSchoolByID(id uint) (*models.School, error)
}

// PostgresSchoolRepository implements SchoolRepository for PostgreSQL
type PostgresSchoolRepository struct {
	db *gorm.DB
}

// NewPostgresSchoolRepository creates a new PostgresSchoolRepository
func NewPostgresSchoolRepository(db *gorm.DB) *PostgresSchoolRepository {
	return &PostgresSchoolRepository{db: db}
}

func (r *PostgresSchoolRepository) CreateSchool(school *models.School) error {
	return r.db.Create(school).Error
}

func (r *PostgresSchoolRepository) GetSchoolByID(id uint) (*models.School, error) {
	var school models.School
	if err := r.db.First(&school, id).Error; err != nil {
		return nil, err
	}
	return &school, nil
}
