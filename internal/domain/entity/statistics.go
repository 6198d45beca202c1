package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserStatistics summarizes a user's rental history
type UserStatistics struct {
	UserID           uint64
	TotalSessions    int
	ActiveSessions   int
	FinishedSessions int
	ExpiredSessions  int
	TotalHours       decimal.Decimal
	TotalAmountDue   decimal.Decimal
	TotalAmountPaid  decimal.Decimal
}

// SummarizeSessions aggregates the given sessions for one user
func SummarizeSessions(userID uint64, sessions []*Session, now time.Time) UserStatistics {
	stats := UserStatistics{
		UserID:          userID,
		TotalHours:      decimal.Zero,
		TotalAmountDue:  decimal.Zero,
		TotalAmountPaid: decimal.Zero,
	}

	for _, s := range sessions {
		stats.TotalSessions++
		switch s.Status {
		case SessionActive:
			stats.ActiveSessions++
		case SessionFinished:
			stats.FinishedSessions++
		case SessionExpired:
			stats.ExpiredSessions++
		}

		stats.TotalHours = stats.TotalHours.Add(decimal.NewFromFloat(s.UsedHours(now)))
		stats.TotalAmountDue = stats.TotalAmountDue.Add(s.AmountDue)
		if s.PaymentStatus == PaymentPaid {
			stats.TotalAmountPaid = stats.TotalAmountPaid.Add(s.AmountDue)
		}
	}

	stats.TotalHours = stats.TotalHours.Round(MaxDecimalPlaces)
	return stats
}
