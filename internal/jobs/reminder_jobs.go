package jobs

import (
	"context"
	"time"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/logger"
)

// SendLoanReminders finds open rentals older than the configured number of
// days and emails each owner a summary. The job only reads the ledger; it
// never touches rental state.
func (jr *JobRunner) SendLoanReminders() {
	jr.runWithRecovery("SendLoanReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.config.Scheduler.ReminderAfterDays)

		query := `
			SELECT u.username, r.id, r.rental_timestamp, r.friend_id, r.tool_id,
			       t.brand, t.name, f.name
			FROM rentals r
			JOIN tools t ON t.id = r.tool_id
			JOIN users u ON u.id = t.user_id
			JOIN friends f ON f.id = r.friend_id
			WHERE r.devolution_timestamp IS NULL AND r.rental_timestamp < $1
			ORDER BY u.username, r.rental_timestamp`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to query overdue loans", "error", err)
			return
		}
		defer rows.Close()

		byOwner := make(map[string][]domain.RentalHistoryEntry)
		for rows.Next() {
			var (
				username string
				e        domain.RentalHistoryEntry
			)
			err := rows.Scan(
				&username,
				&e.Rental.ID, &e.Rental.RentalTimestamp, &e.Rental.FriendID, &e.Rental.ToolID,
				&e.ToolBrand, &e.ToolName, &e.FriendName,
			)
			if err != nil {
				logger.Error("Failed to scan overdue loan", "error", err)
				continue
			}
			byOwner[username] = append(byOwner[username], e)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue loans", "error", err)
			return
		}

		if len(byOwner) == 0 {
			logger.Info("No overdue loans found")
			return
		}

		to := jr.config.SMTP.ReminderTo
		for username, entries := range byOwner {
			logger.Info("Overdue loans found", "owner", username, "count", len(entries))
			if to == "" {
				continue
			}
			if err := jr.email.SendLoanReminder(ctx, to, username, entries); err != nil {
				logger.Error("Failed to send loan reminder", "owner", username, "error", err)
			}
		}
	})
}
