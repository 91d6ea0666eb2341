package workers

import (
	"log"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"gorm.io/gorm"
)

// OverdueWorker periodically flags Borrowing transactions whose due date
// has passed as Overdue, which in turn blocks their renewal.
type OverdueWorker struct {
	db       *gorm.DB
	interval time.Duration
}

func NewOverdueWorker(db *gorm.DB) *OverdueWorker {
	return &OverdueWorker{db: db, interval: time.Hour}
}

func (w *OverdueWorker) Start() {
	ticker := time.NewTicker(w.interval)
	// Run immediately on start
	go func() {
		w.Sweep()
		for range ticker.C {
			w.Sweep()
		}
	}()
}

// Sweep marks every active loan past its due date as overdue.
func (w *OverdueWorker) Sweep() {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	result := w.db.Model(&models.LoanTransactionModel{}).
		Where("status = ? AND due_date < ?", models.LoanBorrowing, today).
		Update("status", models.LoanOverdue)
	if result.Error != nil {
		log.Println("Overdue worker error:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Overdue worker: flagged %d loans as overdue\n", result.RowsAffected)
	}
}
