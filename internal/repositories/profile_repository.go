package repositories

import (
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository gives access to the role-specific profile tables that
// hold canonical display data. Lookups return gorm.ErrRecordNotFound when a
// user has no row in the probed table.
type ProfileRepository interface {
	StudentByUserID(userID uint) (*models.StudentProfile, error)
	SchoolAdminByUserID(userID uint) (*models.SchoolAdminProfile, error)
	SystemAdminByUserID(userID uint) (*models.SystemAdminProfile, error)
	ViewerByUserID(userID uint) (*models.ViewerProfile, error)
	ScoutByUserID(userID uint) (*models.ScoutProfile, error)
	LegacyScoutAdminByID(id uint) (*models.ScoutAdmin, error)
	LegacyScoutAdminByEmail(email string) (*models.ScoutAdmin, error)
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) StudentByUserID(userID uint) (*models.StudentProfile, error) {
	var p models.StudentProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProfileRepository) SchoolAdminByUserID(userID uint) (*models.SchoolAdminProfile, error) {
	var p models.SchoolAdminProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProfileRepository) SystemAdminByUserID(userID uint) (*models.SystemAdminProfile, error) {
	var p models.SystemAdminProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProfileRepository) ViewerByUserID(userID uint) (*models.ViewerProfile, error) {
	var p models.ViewerProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProfileRepository) ScoutByUserID(userID uint) (*models.ScoutProfile, error) {
	var p models.ScoutProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProfileRepository) LegacyScoutAdminByID(id uint) (*models.ScoutAdmin, error) {
	var p models.ScoutAdmin
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProfileRepository) LegacyScoutAdminByEmail(email string) (*models.ScoutAdmin, error) {
	var p models.ScoutAdmin
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
