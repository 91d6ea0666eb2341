package services

import (
	"testing"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveAndCancel(t *testing.T) {
	db := newTestDB(t)
	service := NewReservationService(db)

	card := createCard(t, db, "0")
	title := createTitle(t, db, "In Demand")

	reservation, err := service.Reserve(card.ReaderId, title.Id)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, reservation.Status)

	require.NoError(t, service.Cancel(reservation.Id))

	var after models.ReservationModel
	require.NoError(t, db.First(&after, reservation.Id).Error)
	assert.Equal(t, models.ReservationCancelled, after.Status)

	// A cancelled reservation cannot be cancelled again
	err = service.Cancel(reservation.Id)
	assertKind(t, err, apperrors.KindState)
}

func TestReserveDuplicateOpenReservation(t *testing.T) {
	db := newTestDB(t)
	service := NewReservationService(db)

	card := createCard(t, db, "0")
	title := createTitle(t, db, "In Demand")

	_, err := service.Reserve(card.ReaderId, title.Id)
	require.NoError(t, err)

	_, err = service.Reserve(card.ReaderId, title.Id)
	assertKind(t, err, apperrors.KindConflict)
}

func TestReserveUnknownReaderOrTitle(t *testing.T) {
	db := newTestDB(t)
	service := NewReservationService(db)

	title := createTitle(t, db, "In Demand")
	_, err := service.Reserve(999, title.Id)
	assertKind(t, err, apperrors.KindNotFound)

	card := createCard(t, db, "0")
	_, err = service.Reserve(card.ReaderId, 999)
	assertKind(t, err, apperrors.KindNotFound)
}

func TestMarkOldestPendingReadyOrdering(t *testing.T) {
	db := newTestDB(t)
	service := NewReservationService(db)

	title := createTitle(t, db, "In Demand")
	first := createCard(t, db, "0")
	second := createCard(t, db, "0")

	older, err := service.Reserve(first.ReaderId, title.Id)
	require.NoError(t, err)
	newer, err := service.Reserve(second.ReaderId, title.Id)
	require.NoError(t, err)

	require.NoError(t, service.MarkOldestPendingReady(db, title.Id))

	var olderAfter, newerAfter models.ReservationModel
	require.NoError(t, db.First(&olderAfter, older.Id).Error)
	require.NoError(t, db.First(&newerAfter, newer.Id).Error)
	assert.Equal(t, models.ReservationReady, olderAfter.Status)
	assert.Equal(t, models.ReservationPending, newerAfter.Status)

	// No pending reservation left on another title is a no-op
	other := createTitle(t, db, "Quiet Title")
	require.NoError(t, service.MarkOldestPendingReady(db, other.Id))
}
