package database

import (
	"database/sql"

	"github.com/jmtrinidad26/ScholarManager/app/models"
)

// MasterlistStore reads the masterlist view through the shared pool.
type MasterlistStore struct {
	DB *sql.DB
}

func (s *MasterlistStore) Masterlist() ([]*models.MasterlistRecord, error) {
	return GetMasterlistDetailed(s.DB)
}

// GetMasterlistDetailed returns every row of the masterlist view with the
// fixed projection the API exposes. No filtering or pagination; the view is
// small and the front end filters client-side.
func GetMasterlistDetailed(db *sql.DB) ([]*models.MasterlistRecord, error) {
	query := `SELECT student_id, scholar_name, school_email, year_level, course, campus,
			  delistment_date, delistment_reason, graduation_year, scholarship_status
			  FROM public.masterlist_detailed`

	rows, err := db.Query(query)
	if err != nil {
		return nil, &QueryError{Op: "masterlist query", Err: err}
	}
	defer rows.Close()

	var records []*models.MasterlistRecord
	for rows.Next() {
		rec := &models.MasterlistRecord{}
		if err := rows.Scan(
			&rec.StudentID, &rec.ScholarName, &rec.SchoolEmail, &rec.YearLevel,
			&rec.Course, &rec.Campus, &rec.DelistmentDate, &rec.DelistmentReason,
			&rec.GraduationYear, &rec.ScholarshipStatus,
		); err != nil {
			return nil, &QueryError{Op: "masterlist scan", Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "masterlist rows", Err: err}
	}
	return records, nil
}
