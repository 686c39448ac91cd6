package repositories

import (
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"gorm.io/gorm"
)

// PaymentRepository defines the interface for school payment records
type PaymentRepository interface {
	CreatePayment(payment *models.SchoolPaymentRecord) error
	GetPaymentByID(id string) (*models.SchoolPaymentRecord, error)
	GetPaymentsBySchoolID(schoolID uint) ([]models.SchoolPaymentRecord, error)
}

// PostgresPaymentRepository implements PaymentRepository for PostgreSQL
type PostgresPaymentRepository struct {
	db *gorm.DB
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(db *gorm.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

func (r *PostgresPaymentRepository) CreatePayment(payment *models.SchoolPaymentRecord) error {
	return r.db.Create(payment).Error
}

func (r *PostgresPaymentRepository) GetPaymentByID(id string) (*models.SchoolPaymentRecord, error) {
	var payment models.SchoolPaymentRecord
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PostgresPaymentRepository) GetPaymentsBySchoolID(schoolID uint) ([]models.SchoolPaymentRecord, error) {
	var payments []models.SchoolPaymentRecord
	err := r.db.Where("school_id = ?", schoolID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}
