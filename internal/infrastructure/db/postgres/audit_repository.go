package postgres

import (
	"context"
	"fmt"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

// AuditRepository persists dispatch records in the audit store. The store is
// append-only: no update or delete paths exist.
type AuditRepository struct {
	db DB
}

func NewAuditRepository(db DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Append(ctx context.Context, log *domain.EmailLog) error {
	const q = `INSERT INTO logs (recipient, subject, message, sender_username, sent_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(ctx, q, log.Recipient, log.Subject, log.Message, log.SenderUsername, log.SentAt); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records ordered by send time descending.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.EmailLog, error) {
	const q = `SELECT id, recipient, subject, message, sender_username, sent_at
		FROM logs
		ORDER BY sent_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.EmailLog
	for rows.Next() {
		var l domain.EmailLog
		if err := rows.Scan(&l.ID, &l.Recipient, &l.Subject, &l.Message, &l.SenderUsername, &l.SentAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit logs: %w", err)
	}

	return logs, nil
}
