package database

import (
	"context"

	"github.com/google/uuid"
)

const getUploadsBySession = `-- name: GetUploadsBySession :many
SELECT id, original_filename, mime, size_bytes, storage_provider, object_key, storage_url, upload_status, created_at, session_id FROM uploads WHERE session_id=$1
`

func (q *Queries) GetUploadsBySession(ctx context.Context, sessionID uuid.UUID) ([]Upload, error) {
	rows, err := q.db.QueryContext(ctx, getUploadsBySession, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Upload
	for rows.Next() {
		var i Upload
		if err := rows.Scan(
			&i.ID,
			&i.OriginalFilename,
			&i.Mime,
			&i.SizeBytes,
			&i.StorageProvider,
			&i.ObjectKey,
			&i.StorageUrl,
			&i.UploadStatus,
			&i.CreatedAt,
			&i.SessionID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
