package jobs

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/ledger"
	"hotel-booking/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InitCronJobs mendaftarkan housekeeping jobs harian.
func InitCronJobs(c *cron.Cron, sessionRepo repository.SessionRepository, l *ledger.Ledger, log *zap.Logger) error {
	// Bersihkan session lama tiap tengah malam
	_, err := c.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := sessionRepo.CleanExpiredSessions(ctx); err != nil {
			log.Error("Session cleanup failed", zap.Error(err))
			return
		}
		log.Info("Expired sessions cleaned")
	})
	if err != nil {
		return err
	}

	// Sweep pagi untuk stay yang lewat tanggal check-out
	_, err = c.AddFunc("0 9 * * *", func() {
		flagOverdueStays(l, log)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized")
	return nil
}

// flagOverdueStays logs guests still checked in past their check-out date
// so the front desk can follow up. The stay keeps blocking the room until
// someone actually checks the guest out.
func flagOverdueStays(l *ledger.Ledger, log *zap.Logger) {
	today := utils.Today()

	for _, reservation := range l.Reservations() {
		if reservation.Status != entity.ReservationStatusCheckedIn {
			continue
		}
		if reservation.CheckOut.After(today) {
			continue
		}

		log.Warn("Stay overdue for check-out",
			zap.String("reservation_id", reservation.ID.String()),
			zap.String("confirmation_code", reservation.ConfirmationCode),
			zap.String("check_out", utils.FormatDate(reservation.CheckOut)))
	}
}
