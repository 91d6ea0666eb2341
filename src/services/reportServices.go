package services

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/shopspring/decimal"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new instance of ReportService
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type CirculationSummary struct {
	ActiveLoans       int64           `json:"activeLoans"`
	OverdueLoans      int64           `json:"overdueLoans"`
	ReturnedLoans     int64           `json:"returnedLoans"`
	OutstandingCopies int64           `json:"outstandingCopies"`
	FinesCollected    decimal.Decimal `json:"finesCollected"`
	DepositsHeld      decimal.Decimal `json:"depositsHeld"`
}

// GetCirculationSummary aggregates the counters the dashboard shows.
func (s *ReportService) GetCirculationSummary() (*CirculationSummary, error) {
	summary := &CirculationSummary{}

	counts := map[models.LoanStatus]*int64{
		models.LoanBorrowing: &summary.ActiveLoans,
		models.LoanOverdue:   &summary.OverdueLoans,
		models.LoanReturned:  &summary.ReturnedLoans,
	}
	for status, target := range counts {
		if err := s.db.Model(&models.LoanTransactionModel{}).
			Where("status = ?", status).
			Count(target).Error; err != nil {
			return nil, apperrors.Wrap(err, "counting loans")
		}
	}

	if err := s.db.Model(&models.LoanDetailModel{}).
		Where("return_date IS NULL").
		Count(&summary.OutstandingCopies).Error; err != nil {
		return nil, apperrors.Wrap(err, "counting outstanding copies")
	}

	var fines struct{ Total decimal.Decimal }
	if err := s.db.Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("reference_type = ?", models.PaymentFine).
		Scan(&fines).Error; err != nil {
		return nil, apperrors.Wrap(err, "summing fines")
	}
	summary.FinesCollected = fines.Total

	var deposits struct{ Total decimal.Decimal }
	if err := s.db.Model(&models.LibraryCardModel{}).
		Select("COALESCE(SUM(deposit_balance), 0) AS total").
		Scan(&deposits).Error; err != nil {
		return nil, apperrors.Wrap(err, "summing deposit balances")
	}
	summary.DepositsHeld = deposits.Total

	return summary, nil
}

// ExportLoanLedger builds an xlsx workbook with one row per loan detail.
func (s *ReportService) ExportLoanLedger() (*excelize.File, error) {
	var loans []models.LoanTransactionModel
	if err := s.db.
		Preload("Card.Reader").
		Preload("Details.Copy.BookTitle").
		Order("transaction_date").
		Find(&loans).Error; err != nil {
		return nil, apperrors.Wrap(err, "loading loan ledger")
	}

	f := excelize.NewFile()
	const sheet = "Loan Ledger"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Loan ID", "Card", "Reader", "Transaction Date", "Due Date", "Status", "Copy", "Title", "Renewals", "Return Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, loan := range loans {
		readerName := ""
		if loan.Card != nil {
			readerName = loan.Card.Reader.Fullname
		}
		for _, d := range loan.Details {
			title := ""
			if d.Copy != nil && d.Copy.BookTitle != nil {
				title = d.Copy.BookTitle.Title
			}
			returned := ""
			if d.ReturnDate != nil {
				returned = d.ReturnDate.Format("2006-01-02")
			}

			values := []interface{}{
				loan.Id,
				loan.CardId,
				readerName,
				loan.TransactionDate.Format("2006-01-02"),
				loan.DueDate.Format("2006-01-02"),
				string(loan.Status),
				d.CopyId,
				title,
				d.RenewalCount,
				returned,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	if row == 2 {
		f.SetCellValue(sheet, "A2", "no loans recorded")
	}

	return f, nil
}
