// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PendingRecord is one clinical record created on the vehicle that has not
// yet been acknowledged by the server. It is removed from the local store only
// after a [RecordAck] for LocalID arrives.
type PendingRecord struct {
	// LocalID is the client-side primary key assigned by the local store.
	LocalID int64 `json:"local_id"`

	// CreatedAt is the moment the record was opened on the vehicle.
	// Together with LocalID and the client identity it forms the server-side
	// idempotency key, so a resent record maps to the same server id.
	CreatedAt time.Time `json:"created_at"`

	// Header holds the mission-level fields of the record.
	Header RecordHeader `json:"header"`

	// Parameters, Positions, Scores and Texts are the nested observation
	// sub-packets captured during the mission.
	Parameters []ObservationParameter `json:"parameters,omitempty"`
	Positions  []ObservationPosition  `json:"positions,omitempty"`
	Scores     []ObservationScore     `json:"scores,omitempty"`
	Texts      []ObservationText      `json:"texts,omitempty"`
}

// RecordHeader contains the mission identification of a record.
type RecordHeader struct {
	MissionNumber string `json:"mission_number"`
	VehicleID     string `json:"vehicle_id"`
	CrewMemberID  string `json:"crew_member_id"`
	PatientName   string `json:"patient_name,omitempty"`
	PatientBirth  string `json:"patient_birth,omitempty"`
}

// ObservationParameter is a single vital-sign measurement taken at At.
type ObservationParameter struct {
	At    time.Time `json:"at"`
	Code  string    `json:"code"`
	Value string    `json:"value"`
	Unit  string    `json:"unit,omitempty"`
}

// ObservationPosition is a patient positioning entry.
type ObservationPosition struct {
	At       time.Time `json:"at"`
	Position string    `json:"position"`
}

// ObservationScore is a clinical score (GCS, pain scale, ...) taken at At.
type ObservationScore struct {
	At    time.Time `json:"at"`
	Scale string    `json:"scale"`
	Score int       `json:"score"`
}

// ObservationText is a free-text note attached to the record.
type ObservationText struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}
