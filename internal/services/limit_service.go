package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/Danskers/Finances-API/internal/errors"
	"github.com/Danskers/Finances-API/internal/models"
)

// limitService handles monthly-limit business logic.
type limitService struct {
	db *gorm.DB
}

// NewLimitService creates a new LimitServicer.
func NewLimitService(db *gorm.DB) LimitServicer {
	return &limitService{db: db}
}

// SetLimit creates or replaces the limit for (user, month). The write
// is a single conflict-target upsert against the unique index, so two
// concurrent requests cannot create duplicate rows.
func (s *limitService) SetLimit(userID uint, month string, amount float64) (*models.MonthlyLimit, error) {
	limit := &models.MonthlyLimit{
		UserID: userID,
		Month:  month,
		Amount: amount,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(limit).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Reload: on conflict the insert does not report the winning row's ID.
	return s.GetLimit(userID, month)
}

// GetLimit retrieves the limit for (user, month), or nil when no limit
// is set.
func (s *limitService) GetLimit(userID uint, month string) (*models.MonthlyLimit, error) {
	var limit models.MonthlyLimit
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).First(&limit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &limit, nil
}
