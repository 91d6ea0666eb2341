package services

import (
	"errors"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"gorm.io/gorm"
)

type ReservationService struct {
	db *gorm.DB
}

// NewReservationService creates a new instance of ReservationService
func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// GetAllReservations retrieves all Reservation records from the database
func (s *ReservationService) GetAllReservations() ([]models.ReservationModel, error) {
	var reservations []models.ReservationModel
	result := s.db.Preload("Reader").Preload("BookTitle").Order("reserved_at").Find(&reservations)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "listing reservations")
	}
	return reservations, nil
}

// GetReservationsByReader retrieves a reader's reservations
func (s *ReservationService) GetReservationsByReader(readerId int) ([]models.ReservationModel, error) {
	var reservations []models.ReservationModel
	result := s.db.Preload("BookTitle").Where("reader_id = ?", readerId).Order("reserved_at").Find(&reservations)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "listing reader reservations")
	}
	return reservations, nil
}

// Reserve places a pending reservation on a title for a reader.
func (s *ReservationService) Reserve(readerId, bookTitleId int) (*models.ReservationModel, error) {
	if readerId <= 0 || bookTitleId <= 0 {
		return nil, apperrors.Validationf("readerId and bookTitleId are required")
	}

	var reader models.ReaderModel
	if err := s.db.First(&reader, readerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("reader %d not found", readerId)
		}
		return nil, apperrors.Wrap(err, "reading reader")
	}
	var title models.BookTitleModel
	if err := s.db.First(&title, bookTitleId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("book title %d not found", bookTitleId)
		}
		return nil, apperrors.Wrap(err, "reading book title")
	}

	var existing int64
	if err := s.db.Model(&models.ReservationModel{}).
		Where("reader_id = ? AND book_title_id = ? AND status IN ?",
			readerId, bookTitleId, []models.ReservationStatus{models.ReservationPending, models.ReservationReady}).
		Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(err, "checking existing reservations")
	}
	if existing > 0 {
		return nil, apperrors.Conflictf("reader %d already has an open reservation on title %d", readerId, bookTitleId)
	}

	reservation := models.ReservationModel{
		ReaderId:    readerId,
		BookTitleId: bookTitleId,
		Status:      models.ReservationPending,
		ReservedAt:  time.Now(),
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, apperrors.Wrap(err, "creating reservation")
	}
	return &reservation, nil
}

// Cancel withdraws an open reservation.
func (s *ReservationService) Cancel(id int) error {
	var reservation models.ReservationModel
	if err := s.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("reservation %d not found", id)
		}
		return apperrors.Wrap(err, "reading reservation")
	}
	if reservation.Status != models.ReservationPending && reservation.Status != models.ReservationReady {
		return apperrors.Statef("reservation %d is already %s", id, reservation.Status)
	}

	if err := s.db.Model(&reservation).Update("status", models.ReservationCancelled).Error; err != nil {
		return apperrors.Wrap(err, "cancelling reservation")
	}
	return nil
}

// MarkOldestPendingReady promotes the longest-waiting pending reservation
// on the title, if any. Called from the return flow inside its transaction.
func (s *ReservationService) MarkOldestPendingReady(tx *gorm.DB, bookTitleId int) error {
	var reservation models.ReservationModel
	err := tx.Where("book_title_id = ? AND status = ?", bookTitleId, models.ReservationPending).
		Order("reserved_at").
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Wrap(err, "reading pending reservations")
	}

	if err := tx.Model(&reservation).Update("status", models.ReservationReady).Error; err != nil {
		return apperrors.Wrap(err, "promoting reservation")
	}
	return nil
}
