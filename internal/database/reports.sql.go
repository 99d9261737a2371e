package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateReport = `-- name: CreateOrUpdateReport :exec
INSERT INTO reports (
report, session_id)
VALUES ( $1, $2)
ON CONFLICT (session_id)
DO UPDATE SET
    report = EXCLUDED.report,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateReportParams struct {
	Report    json.RawMessage
	SessionID uuid.UUID
}

func (q *Queries) CreateOrUpdateReport(ctx context.Context, arg CreateOrUpdateReportParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateReport, arg.Report, arg.SessionID)
	return err
}
