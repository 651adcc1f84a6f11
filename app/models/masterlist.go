package models

import (
	"database/sql"
)

// MasterlistRecord is one row of the public.masterlist_detailed view. The view
// is owned by the relational store and read-only from this application.
type MasterlistRecord struct {
	StudentID         int64
	ScholarName       string
	SchoolEmail       string
	YearLevel         string
	Course            string
	Campus            string
	DelistmentDate    sql.NullTime
	DelistmentReason  sql.NullString
	GraduationYear    sql.NullInt64
	ScholarshipStatus string
}

// CanonicalStudent is the application-facing shape a masterlist row is
// normalized into. CreatedAt reflects normalization time, not any persisted
// timestamp.
type CanonicalStudent struct {
	ID                string `json:"_id"`
	StudentNumber     string `json:"studentNumber"`
	SchoolEmail       string `json:"schoolEmail"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	ScholarshipStatus string `json:"scholarship_status"`
	GraduationYear    *int64 `json:"graduation_year"`
	Year              string `json:"year"`
	Branch            string `json:"branch"`
	Program           string `json:"program"`
	CreatedAt         string `json:"createdAt"`
}
