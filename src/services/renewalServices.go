package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"gorm.io/gorm"
)

type RenewalService struct {
	db       *gorm.DB
	settings *SettingService
}

// NewRenewalService creates a new instance of RenewalService
func NewRenewalService(db *gorm.DB, settings *SettingService) *RenewalService {
	return &RenewalService{db: db, settings: settings}
}

// RenewalEligibility is the structured answer to "can this loan be renewed".
type RenewalEligibility struct {
	Eligible          bool       `json:"eligible"`
	Reason            string     `json:"reason,omitempty"`
	NewDueDate        *time.Time `json:"newDueDate,omitempty"`
	OutstandingCopies int        `json:"outstandingCopies"`
}

type RenewalResult struct {
	NewDueDate    time.Time `json:"newDueDate"`
	RenewedCopies int       `json:"renewedCopies"`
}

// evaluate loads the transaction and applies the eligibility rules, returning
// everything Renew needs to commit.
func (s *RenewalService) evaluate(loanId int) (*models.LoanTransactionModel, []models.LoanDetailModel, int, *RenewalEligibility, error) {
	var txn models.LoanTransactionModel
	if err := s.db.First(&txn, loanId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, nil, apperrors.NotFoundf("loan transaction %d not found", loanId)
		}
		return nil, nil, 0, nil, apperrors.Wrap(err, "reading loan transaction")
	}

	limit, err := s.settings.GetInt(SettingMaxRenewalCount)
	if err != nil {
		return nil, nil, 0, nil, err
	}
	renewalDays, err := s.settings.GetInt(SettingRenewalPeriodDays)
	if err != nil {
		return nil, nil, 0, nil, err
	}

	var details []models.LoanDetailModel
	if err := s.db.Where("loan_transaction_id = ?", txn.Id).Find(&details).Error; err != nil {
		return nil, nil, 0, nil, apperrors.Wrap(err, "reading loan details")
	}

	outstanding := []models.LoanDetailModel{}
	for _, d := range details {
		if d.ReturnDate == nil {
			outstanding = append(outstanding, d)
		}
	}

	eligibility := &RenewalEligibility{OutstandingCopies: len(outstanding)}
	if len(outstanding) == 0 {
		eligibility.Reason = "all copies already returned"
		return &txn, outstanding, 0, eligibility, nil
	}

	maxRenewal := 0
	for _, d := range outstanding {
		if d.RenewalCount > maxRenewal {
			maxRenewal = d.RenewalCount
		}
	}

	if maxRenewal >= limit {
		eligibility.Reason = fmt.Sprintf("renewal limit of %d reached", limit)
		return &txn, outstanding, maxRenewal, eligibility, nil
	}
	if txn.Status == models.LoanOverdue {
		eligibility.Reason = "loan is already overdue"
		return &txn, outstanding, maxRenewal, eligibility, nil
	}

	newDue := txn.DueDate.AddDate(0, 0, renewalDays)
	eligibility.Eligible = true
	eligibility.NewDueDate = &newDue
	return &txn, outstanding, maxRenewal, eligibility, nil
}

// CheckEligibility answers whether the loan can currently be renewed,
// without changing anything.
func (s *RenewalService) CheckEligibility(loanId int) (*RenewalEligibility, error) {
	_, _, _, eligibility, err := s.evaluate(loanId)
	if err != nil {
		return nil, err
	}
	return eligibility, nil
}

// Renew extends the due date and bumps the renewal counter on every
// outstanding copy of the transaction. Both updates are applied in one
// database transaction.
func (s *RenewalService) Renew(loanId int) (*RenewalResult, error) {
	txn, outstanding, maxRenewal, eligibility, err := s.evaluate(loanId)
	if err != nil {
		return nil, err
	}
	if !eligibility.Eligible {
		return nil, apperrors.Statef("loan transaction %d cannot be renewed: %s", loanId, eligibility.Reason)
	}

	newDue := *eligibility.NewDueDate
	detailIds := make([]int, 0, len(outstanding))
	for _, d := range outstanding {
		detailIds = append(detailIds, d.Id)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.LoanDetailModel{}).
			Where("id IN ?", detailIds).
			Update("renewal_count", maxRenewal+1).Error; err != nil {
			return apperrors.Wrap(err, "updating renewal counters")
		}

		if err := tx.Model(&models.LoanTransactionModel{}).
			Where("id = ?", txn.Id).
			Updates(map[string]interface{}{
				"due_date": newDue,
				"status":   models.LoanBorrowing,
			}).Error; err != nil {
			return apperrors.Wrap(err, "updating loan due date")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RenewalResult{NewDueDate: newDue, RenewedCopies: len(outstanding)}, nil
}
