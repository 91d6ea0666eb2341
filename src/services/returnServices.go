package services

import (
	"errors"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReturnService struct {
	db           *gorm.DB
	settings     *SettingService
	locks        *CardLocks
	reservations *ReservationService // optional, hands returned titles to waiting readers
}

// NewReturnService creates a new instance of ReturnService
// reservations may be nil if no reservation hand-off is wanted
func NewReturnService(db *gorm.DB, settings *SettingService, locks *CardLocks, reservations *ReservationService) *ReturnService {
	return &ReturnService{
		db:           db,
		settings:     settings,
		locks:        locks,
		reservations: reservations,
	}
}

type ReturnItem struct {
	LoanDetailId int                       `json:"loanDetailId"`
	NewCondition models.CopyCondition      `json:"newCondition"`
	Disposition  models.AvailabilityStatus `json:"disposition"` // Available or Lost
}

type ReturnRequest struct {
	LoanTransactionId int          `json:"loanTransactionId"`
	Items             []ReturnItem `json:"items"`
	PaymentMethod     string       `json:"paymentMethod"`
}

type CopyFee struct {
	LoanDetailId int             `json:"loanDetailId"`
	CopyId       int             `json:"copyId"`
	LateDays     int             `json:"lateDays"`
	LateFee      decimal.Decimal `json:"lateFee"`
	DamageFee    decimal.Decimal `json:"damageFee"`
	Total        decimal.Decimal `json:"total"`
}

type ReturnResult struct {
	Fees          []CopyFee         `json:"fees"`
	TotalFine     decimal.Decimal   `json:"totalFine"`
	ReceiptNumber string            `json:"receiptNumber,omitempty"`
	Status        models.LoanStatus `json:"status"`
}

// daysLate counts whole calendar days between the due date and today.
// Never negative.
func daysLate(today, dueDate time.Time) int {
	days := int(dateOnly(today).Sub(dateOnly(dueDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// lateFee charges the daily rate for every late day past the grace period.
func lateFee(lateDays, graceDays int, dailyRate decimal.Decimal) decimal.Decimal {
	daysToCharge := lateDays - graceDays
	if daysToCharge <= 0 {
		return decimal.Zero
	}
	return dailyRate.Mul(decimal.NewFromInt(int64(daysToCharge)))
}

// damageFee prices a condition change: full copy price on loss, half price
// on degradation to Damaged, nothing when the condition is unchanged.
// Loss supersedes any damage charge.
func damageFee(price decimal.Decimal, current, next models.CopyCondition, disposition models.AvailabilityStatus) decimal.Decimal {
	if disposition == models.CopyLost {
		return price
	}
	if next == current {
		return decimal.Zero
	}
	if next == models.ConditionDamaged {
		return price.Mul(decimal.NewFromFloat(0.5))
	}
	return decimal.Zero
}

// ReturnBooks settles the selected copies of a loan: computes late and
// damage/loss fees, records the return dates and copy states, books a fine
// payment when something is owed, and closes the transaction once nothing
// is outstanding. All validation happens before the first write.
func (s *ReturnService) ReturnBooks(req *ReturnRequest) (*ReturnResult, error) {
	if req.LoanTransactionId <= 0 || len(req.Items) == 0 {
		return nil, apperrors.Validationf("loanTransactionId and at least one item are required")
	}
	if req.PaymentMethod == "" {
		return nil, apperrors.Validationf("paymentMethod is required")
	}

	var txn models.LoanTransactionModel
	if err := s.db.First(&txn, req.LoanTransactionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("loan transaction %d not found", req.LoanTransactionId)
		}
		return nil, apperrors.Wrap(err, "reading loan transaction")
	}

	unlock := s.locks.Lock(txn.CardId)
	defer unlock()

	var details []models.LoanDetailModel
	if err := s.db.Preload("Copy").Where("loan_transaction_id = ?", txn.Id).Find(&details).Error; err != nil {
		return nil, apperrors.Wrap(err, "reading loan details")
	}

	outstanding := make(map[int]*models.LoanDetailModel)
	for i := range details {
		if details[i].ReturnDate == nil {
			outstanding[details[i].Id] = &details[i]
		}
	}
	if len(outstanding) == 0 {
		return nil, apperrors.Statef("all copies of loan transaction %d already returned", txn.Id)
	}

	// Validate every selected item before computing a single fee
	selected := make([]*models.LoanDetailModel, 0, len(req.Items))
	seen := make(map[int]bool, len(req.Items))
	for _, item := range req.Items {
		if seen[item.LoanDetailId] {
			return nil, apperrors.Validationf("loan detail %d is listed more than once", item.LoanDetailId)
		}
		seen[item.LoanDetailId] = true

		detail, ok := outstanding[item.LoanDetailId]
		if !ok {
			return nil, apperrors.Validationf("loan detail %d is not outstanding on transaction %d", item.LoanDetailId, txn.Id)
		}
		if item.Disposition != models.CopyAvailable && item.Disposition != models.CopyLost {
			return nil, apperrors.Validationf("disposition of loan detail %d must be %s or %s", item.LoanDetailId, models.CopyAvailable, models.CopyLost)
		}
		if item.NewCondition.Rank() < 0 {
			return nil, apperrors.Validationf("unknown condition %q for loan detail %d", item.NewCondition, item.LoanDetailId)
		}
		if item.NewCondition == models.ConditionLost && item.Disposition != models.CopyLost {
			return nil, apperrors.Validationf("condition of loan detail %d cannot be %s unless the copy is declared lost", item.LoanDetailId, models.ConditionLost)
		}
		if item.NewCondition.Rank() < detail.Copy.Condition.Rank() {
			return nil, apperrors.Validationf("condition of copy %d cannot improve from %s to %s",
				detail.CopyId, detail.Copy.Condition, item.NewCondition)
		}
		selected = append(selected, detail)
	}

	dailyRate, err := s.settings.GetDecimal(SettingLateFeePerDay)
	if err != nil {
		return nil, err
	}
	graceDays, err := s.settings.GetInt(SettingLateFeeGraceDays)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	late := daysLate(now, txn.DueDate)

	fees := make([]CopyFee, 0, len(req.Items))
	totalFine := decimal.Zero
	for i, item := range req.Items {
		detail := selected[i]
		lf := lateFee(late, graceDays, dailyRate)
		df := damageFee(detail.Copy.Price, detail.Copy.Condition, item.NewCondition, item.Disposition)
		fee := CopyFee{
			LoanDetailId: detail.Id,
			CopyId:       detail.CopyId,
			LateDays:     late,
			LateFee:      lf,
			DamageFee:    df,
			Total:        lf.Add(df),
		}
		fees = append(fees, fee)
		totalFine = totalFine.Add(fee.Total)
	}

	result := &ReturnResult{Fees: fees, TotalFine: totalFine, Status: txn.Status}
	returnDate := dateOnly(now)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i, item := range req.Items {
			detail := selected[i]

			// 1) Stamp the return date
			if err := tx.Model(&models.LoanDetailModel{}).
				Where("id = ?", detail.Id).
				Update("return_date", returnDate).Error; err != nil {
				return apperrors.Wrap(err, "setting return date")
			}

			// 2) Update copy condition and availability. Lost copies stay
			// out of circulation permanently.
			condition := item.NewCondition
			availability := models.CopyAvailable
			if item.Disposition == models.CopyLost {
				condition = models.ConditionLost
				availability = models.CopyLost
			}
			if err := tx.Model(&models.BookCopyModel{}).
				Where("id = ?", detail.CopyId).
				Updates(map[string]interface{}{
					"condition":           condition,
					"availability_status": availability,
				}).Error; err != nil {
				return apperrors.Wrap(err, "updating copy state")
			}

			// Hand the title to the oldest waiting reservation
			if s.reservations != nil && availability == models.CopyAvailable {
				if err := s.reservations.MarkOldestPendingReady(tx, detail.Copy.BookTitleId); err != nil {
					return err
				}
			}
		}

		// 3) Book the fine as a payment
		if totalFine.IsPositive() {
			payment := models.PaymentModel{
				CardId:        txn.CardId,
				Amount:        totalFine,
				ReferenceType: models.PaymentFine,
				PaymentMethod: req.PaymentMethod,
				PaymentDate:   now,
				ReceiptNumber: uuid.NewString(),
			}
			if err := tx.Create(&payment).Error; err != nil {
				return apperrors.Wrap(err, "recording fine payment")
			}
			result.ReceiptNumber = payment.ReceiptNumber
		}

		// 4) Close the transaction when nothing is left outstanding
		var remaining int64
		if err := tx.Model(&models.LoanDetailModel{}).
			Where("loan_transaction_id = ? AND return_date IS NULL", txn.Id).
			Count(&remaining).Error; err != nil {
			return apperrors.Wrap(err, "counting outstanding loan details")
		}
		if remaining == 0 {
			if err := tx.Model(&models.LoanTransactionModel{}).
				Where("id = ?", txn.Id).
				Update("status", models.LoanReturned).Error; err != nil {
				return apperrors.Wrap(err, "closing loan transaction")
			}
			result.Status = models.LoanReturned
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
