// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveRecord = `
		INSERT INTO records (client_id, local_id, created_at, header, observations)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (client_id, local_id, created_at)
		DO UPDATE SET client_id = EXCLUDED.client_id
		RETURNING server_id;`

	getRecord = `
		SELECT local_id, created_at, header, observations
		FROM records
		WHERE client_id = $1 AND server_id = $2;`

	ensureClient = `
		INSERT INTO ambulance_last_update (client_id)
		VALUES ($1)
		ON CONFLICT (client_id) DO NOTHING;`

	getClientState = `
		SELECT client_id, acked_watermark, served_watermark, last_contact, message
		FROM ambulance_last_update
		WHERE client_id = $1;`

	markServed = `
		UPDATE ambulance_last_update
		SET served_watermark = COALESCE($2, served_watermark),
			last_contact = now(),
			message = $3
		WHERE client_id = $1;`

	storeAck = `
		UPDATE ambulance_last_update
		SET acked_watermark = COALESCE($2, acked_watermark),
			last_contact = now(),
			message = $3
		WHERE client_id = $1;`

	tickClock = `
		UPDATE mutation_log_clock
		SET last_ts = GREATEST(last_ts + 1, $1)
		WHERE id = 1
		RETURNING last_ts;`

	insertLogEntry = `INSERT INTO mutation_log (ts, statement) VALUES ($1, $2);`

	lockUser = `SELECT disabled FROM users WHERE user_id = $1 FOR UPDATE;`

	disableUser = `UPDATE users SET disabled = 1 WHERE user_id = $1;`
)
