package repositories

import (
	"fraudshield/internal/models"

	"gorm.io/gorm"
)

// AnalysisRepository persists completed analysis runs for the history view.
type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	List(limit int) ([]models.Analysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	return r.db.Create(analysis).Error
}

func (r *analysisRepository) List(limit int) ([]models.Analysis, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var analyses []models.Analysis
	err := r.db.Order("created_at DESC").Limit(limit).Find(&analyses).Error
	return analyses, err
}
