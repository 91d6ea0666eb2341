package services

import (
	"testing"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateStaffHashesPassword(t *testing.T) {
	db := newTestDB(t)
	service := NewStaffService(db)

	created, err := service.CreateStaff(&models.StaffModel{
		Username: "clerk",
		Password: "s3cret",
		Fullname: "Front Desk",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")))

	_, err = service.CreateStaff(&models.StaffModel{Username: "", Password: ""})
	assertKind(t, err, apperrors.KindValidation)
}

func TestAuthenticateStaff(t *testing.T) {
	db := newTestDB(t)
	service := NewStaffService(db)
	middleware.SetSecretKey("test-secret")

	_, err := service.CreateStaff(&models.StaffModel{
		Username: "clerk",
		Password: "s3cret",
		Fullname: "Front Desk",
		Role:     "staff",
	})
	require.NoError(t, err)

	tokenString, err := service.AuthenticateStaff("clerk", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)

	_, err = service.AuthenticateStaff("clerk", "wrong")
	assertKind(t, err, apperrors.KindValidation)

	_, err = service.AuthenticateStaff("nobody", "s3cret")
	assertKind(t, err, apperrors.KindValidation)
}
