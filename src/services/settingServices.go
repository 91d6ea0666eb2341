package services

import (
	"errors"
	"strconv"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Policy setting names consumed by the loan lifecycle.
const (
	SettingMaxBooksPerCard   = "max_books_per_card"
	SettingLoanPeriodDays    = "loan_period_days"
	SettingMaxRenewalCount   = "max_renewal_count"
	SettingRenewalPeriodDays = "renewal_period_days"
	SettingLateFeePerDay     = "late_fee_per_day"
	SettingLateFeeGraceDays  = "late_fee_grace_days"
)

// SettingService reads policy scalars from the system_settings table.
// There is no caching: every call re-reads the store, so a policy change
// takes effect for the next operation that asks for it.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService creates a new instance of SettingService
func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

func (s *SettingService) getRaw(name string) (string, error) {
	var setting models.SystemSettingModel
	result := s.db.Where("setting_name = ?", name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", apperrors.NotFoundf("system setting %q not found", name)
		}
		return "", apperrors.Wrap(result.Error, "reading system setting "+name)
	}
	return setting.SettingValue, nil
}

// GetInt returns the named setting parsed as an integer.
func (s *SettingService) GetInt(name string) (int, error) {
	raw, err := s.getRaw(name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Statef("system setting %q is not an integer: %q", name, raw)
	}
	return value, nil
}

// GetDecimal returns the named setting parsed as a decimal amount.
func (s *SettingService) GetDecimal(name string) (decimal.Decimal, error) {
	raw, err := s.getRaw(name)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.Statef("system setting %q is not a decimal: %q", name, raw)
	}
	return value, nil
}

// GetAllSettings retrieves all SystemSetting records from the database
func (s *SettingService) GetAllSettings() ([]models.SystemSettingModel, error) {
	var settings []models.SystemSettingModel
	result := s.db.Order("setting_name").Find(&settings)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "listing system settings")
	}
	return settings, nil
}

// SetSetting creates or updates a named setting.
func (s *SettingService) SetSetting(name, value string) (*models.SystemSettingModel, error) {
	if name == "" || value == "" {
		return nil, apperrors.Validationf("settingName and settingValue are required")
	}

	var setting models.SystemSettingModel
	result := s.db.Where("setting_name = ?", name).First(&setting)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(result.Error, "reading system setting "+name)
		}
		setting = models.SystemSettingModel{SettingName: name, SettingValue: value}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, apperrors.Wrap(err, "creating system setting "+name)
		}
		return &setting, nil
	}

	if err := s.db.Model(&setting).Update("setting_value", value).Error; err != nil {
		return nil, apperrors.Wrap(err, "updating system setting "+name)
	}
	setting.SettingValue = value
	return &setting, nil
}
