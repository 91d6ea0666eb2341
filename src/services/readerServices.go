package services

import (
	"errors"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"gorm.io/gorm"
)

type ReaderService struct {
	db *gorm.DB
}

// NewReaderService creates a new instance of ReaderService
func NewReaderService(db *gorm.DB) *ReaderService {
	return &ReaderService{db: db}
}

// GetAllReaders retrieves all Reader records from the database
func (s *ReaderService) GetAllReaders() ([]models.ReaderModel, error) {
	var readers []models.ReaderModel
	result := s.db.Find(&readers)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "listing readers")
	}
	return readers, nil
}

// GetReaderByID retrieves a Reader record by its ID
func (s *ReaderService) GetReaderByID(id int) (*models.ReaderModel, error) {
	var reader models.ReaderModel
	result := s.db.First(&reader, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("reader %d not found", id)
		}
		return nil, apperrors.Wrap(result.Error, "reading reader")
	}
	return &reader, nil
}

// CreateReader creates a new Reader record in the database
func (s *ReaderService) CreateReader(reader *models.ReaderModel) (*models.ReaderModel, error) {
	if reader.Fullname == "" {
		return nil, apperrors.Validationf("fullname is required")
	}
	reader.CreatedAt = time.Now()
	if err := s.db.Create(reader).Error; err != nil {
		return nil, apperrors.Wrap(err, "creating reader")
	}
	return reader, nil
}

// UpdateReader updates an existing Reader record
func (s *ReaderService) UpdateReader(id int, updated *models.ReaderModel) (*models.ReaderModel, error) {
	var reader models.ReaderModel
	if err := s.db.First(&reader, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("reader %d not found", id)
		}
		return nil, apperrors.Wrap(err, "reading reader")
	}

	updated.Id = id
	if err := s.db.Model(&reader).Updates(updated).Error; err != nil {
		return nil, apperrors.Wrap(err, "updating reader")
	}
	return &reader, nil
}

// DeleteReader deletes a Reader record by ID
func (s *ReaderService) DeleteReader(id int) error {
	var cards int64
	if err := s.db.Model(&models.LibraryCardModel{}).Where("reader_id = ?", id).Count(&cards).Error; err != nil {
		return apperrors.Wrap(err, "counting reader cards")
	}
	if cards > 0 {
		return apperrors.Statef("reader %d still has %d library cards", id, cards)
	}
	result := s.db.Delete(&models.ReaderModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "deleting reader")
	}
	return nil
}
