package services

import (
	"errors"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"gorm.io/gorm"
)

type BookService struct {
	db *gorm.DB
}

// NewBookService creates a new instance of BookService
func NewBookService(db *gorm.DB) *BookService {
	return &BookService{db: db}
}

// ======================= TITLES =======================

// GetAllTitles retrieves all BookTitle records from the database
func (s *BookService) GetAllTitles() ([]models.BookTitleModel, error) {
	var titles []models.BookTitleModel
	result := s.db.Preload("Copies").Find(&titles)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "listing book titles")
	}
	return titles, nil
}

// GetTitleByID retrieves a BookTitle record by its ID
func (s *BookService) GetTitleByID(id int) (*models.BookTitleModel, error) {
	var title models.BookTitleModel
	result := s.db.Preload("Copies").First(&title, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("book title %d not found", id)
		}
		return nil, apperrors.Wrap(result.Error, "reading book title")
	}
	return &title, nil
}

// CreateTitle creates a new BookTitle record in the database
func (s *BookService) CreateTitle(title *models.BookTitleModel) (*models.BookTitleModel, error) {
	if title.Title == "" || title.Author == "" {
		return nil, apperrors.Validationf("title and author are required")
	}
	if err := s.db.Create(title).Error; err != nil {
		return nil, apperrors.Wrap(err, "creating book title")
	}
	return title, nil
}

// UpdateTitle updates an existing BookTitle record
func (s *BookService) UpdateTitle(id int, updated *models.BookTitleModel) (*models.BookTitleModel, error) {
	var title models.BookTitleModel
	if err := s.db.First(&title, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("book title %d not found", id)
		}
		return nil, apperrors.Wrap(err, "reading book title")
	}

	updated.Id = id
	if err := s.db.Model(&title).Updates(updated).Error; err != nil {
		return nil, apperrors.Wrap(err, "updating book title")
	}

	if err := s.db.Preload("Copies").First(&title, id).Error; err != nil {
		return nil, apperrors.Wrap(err, "reloading book title")
	}
	return &title, nil
}

// DeleteTitle deletes a BookTitle record by its ID
func (s *BookService) DeleteTitle(id int) error {
	var copies int64
	if err := s.db.Model(&models.BookCopyModel{}).Where("book_title_id = ?", id).Count(&copies).Error; err != nil {
		return apperrors.Wrap(err, "counting copies of title")
	}
	if copies > 0 {
		return apperrors.Statef("book title %d still has %d copies", id, copies)
	}
	result := s.db.Delete(&models.BookTitleModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "deleting book title")
	}
	return nil
}

// ======================= COPIES =======================

// GetCopiesByTitle retrieves all copies of a given title
func (s *BookService) GetCopiesByTitle(titleId int) ([]models.BookCopyModel, error) {
	var copies []models.BookCopyModel
	result := s.db.Where("book_title_id = ?", titleId).Find(&copies)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "listing book copies")
	}
	return copies, nil
}

// GetCopyByID retrieves a BookCopy record by its ID
func (s *BookService) GetCopyByID(id int) (*models.BookCopyModel, error) {
	var copy models.BookCopyModel
	result := s.db.Preload("BookTitle").First(&copy, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("book copy %d not found", id)
		}
		return nil, apperrors.Wrap(result.Error, "reading book copy")
	}
	return &copy, nil
}

// CreateCopy creates a new BookCopy record in the database
func (s *BookService) CreateCopy(copy *models.BookCopyModel) (*models.BookCopyModel, error) {
	if copy.BookTitleId <= 0 {
		return nil, apperrors.Validationf("bookTitleId is required")
	}
	if copy.Price.IsNegative() {
		return nil, apperrors.Validationf("price cannot be negative")
	}

	var title models.BookTitleModel
	if err := s.db.First(&title, copy.BookTitleId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("book title %d not found", copy.BookTitleId)
		}
		return nil, apperrors.Wrap(err, "reading book title")
	}

	if copy.Condition == "" {
		copy.Condition = models.ConditionNormal
	}
	if copy.Condition.Rank() < 0 {
		return nil, apperrors.Validationf("unknown condition %q", copy.Condition)
	}
	if copy.AvailabilityStatus == "" {
		copy.AvailabilityStatus = models.CopyAvailable
	}

	if err := s.db.Create(copy).Error; err != nil {
		return nil, apperrors.Wrap(err, "creating book copy")
	}
	return copy, nil
}

// DeleteCopy deletes a BookCopy record by its ID, refusing while it is on loan
func (s *BookService) DeleteCopy(id int) error {
	var copy models.BookCopyModel
	if err := s.db.First(&copy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("book copy %d not found", id)
		}
		return apperrors.Wrap(err, "reading book copy")
	}
	if copy.AvailabilityStatus == models.CopyOnLoan {
		return apperrors.Statef("book copy %d is on loan and cannot be deleted", id)
	}
	result := s.db.Delete(&models.BookCopyModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "deleting book copy")
	}
	return nil
}
