package services

import (
	"errors"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StaffService struct {
	db *gorm.DB
}

// NewStaffService creates a new instance of StaffService
func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

// GetAllStaff retrieves all Staff records from the database
func (s *StaffService) GetAllStaff() ([]models.StaffModel, error) {
	var staff []models.StaffModel
	result := s.db.Find(&staff)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "listing staff")
	}
	return staff, nil
}

// CreateStaff creates a new Staff record in the database
func (s *StaffService) CreateStaff(staff *models.StaffModel) (*models.StaffModel, error) {
	if staff.Username == "" || staff.Password == "" {
		return nil, apperrors.Validationf("username and password are required")
	}

	// Hash the password before saving
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(staff.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "hashing password")
	}
	staff.Password = string(hashedPassword)

	if err := s.db.Create(staff).Error; err != nil {
		return nil, apperrors.Wrap(err, "creating staff account")
	}
	return staff, nil
}

// DeleteStaff deletes a Staff record by ID
func (s *StaffService) DeleteStaff(id int) error {
	result := s.db.Delete(&models.StaffModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "deleting staff account")
	}
	return nil
}

// AuthenticateStaff checks staff credentials and returns a JWT token if valid
func (s *StaffService) AuthenticateStaff(username, password string) (string, error) {
	var staff models.StaffModel
	result := s.db.Where("username = ?", username).First(&staff)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", apperrors.Validationf("invalid username or password")
		}
		return "", apperrors.Wrap(result.Error, "reading staff account")
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return "", apperrors.Validationf("invalid username or password")
	}

	claims := jwt.MapClaims{
		"id":  staff.Id,
		"exp": time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", apperrors.Wrap(err, "signing token")
	}

	return tokenString, nil
}
