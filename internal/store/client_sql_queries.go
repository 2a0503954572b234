// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	savePendingRecord = `
		INSERT INTO pending_records (
			created_at,
			mission_number,
			vehicle_id,
			crew_member_id,
			patient_name,
			patient_birth,
			parameters,
			positions,
			scores,
			texts
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	listPendingRecords = `
		SELECT
			local_id,
			created_at,
			mission_number,
			vehicle_id,
			crew_member_id,
			patient_name,
			patient_birth,
			parameters,
			positions,
			scores,
			texts
		FROM pending_records
		ORDER BY local_id;`

	deletePendingRecord = `DELETE FROM pending_records WHERE local_id = ?;`

	getSyncState = `
		SELECT client_id, watermark, last_contact, message
		FROM sync_state
		WHERE client_id = ?;`

	saveSyncState = `
		INSERT INTO sync_state (client_id, watermark, last_contact, message)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (client_id) DO UPDATE SET
			watermark = excluded.watermark,
			last_contact = excluded.last_contact,
			message = excluded.message;`

	listBlockedLogins = `
		SELECT user_id, failed_attempts
		FROM login_attempts
		WHERE failed_attempts >= ?
		ORDER BY user_id;`

	recordFailedLogin = `
		INSERT INTO login_attempts (user_id, failed_attempts)
		VALUES (?, 1)
		ON CONFLICT (user_id) DO UPDATE SET failed_attempts = failed_attempts + 1;`
)
