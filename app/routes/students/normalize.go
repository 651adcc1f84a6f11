package students

import (
	"strconv"
	"strings"
	"time"

	"github.com/jmtrinidad26/ScholarManager/app/models"
)

// programNames expands the course codes the masterlist uses; unmapped codes
// pass through unchanged.
var programNames = map[string]string{
	"BSCS": "Bachelor of Science in Computer Science",
	"BSIT": "Bachelor of Science in Information Technology",
}

func expandProgram(course string) string {
	if name, ok := programNames[course]; ok {
		return name
	}
	return course
}

// splitName takes the first whitespace-delimited token as the first name and
// joins the rest as the last name.
func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// yearDigit returns the first decimal digit in the year-level label, or ""
// when the label has none.
func yearDigit(label string) string {
	for _, r := range label {
		if r >= '0' && r <= '9' {
			return string(r)
		}
	}
	return ""
}

// normalizeMasterlist maps one masterlist row to the canonical student shape.
// It never fails; malformed fields degrade to empty strings.
func normalizeMasterlist(rec *models.MasterlistRecord) models.CanonicalStudent {
	first, last := splitName(rec.ScholarName)

	var gradYear *int64
	if rec.GraduationYear.Valid {
		y := rec.GraduationYear.Int64
		gradYear = &y
	}

	id := strconv.FormatInt(rec.StudentID, 10)
	return models.CanonicalStudent{
		ID:                id,
		StudentNumber:     id,
		SchoolEmail:       rec.SchoolEmail,
		FirstName:         first,
		LastName:          last,
		ScholarshipStatus: rec.ScholarshipStatus,
		GraduationYear:    gradYear,
		Year:              yearDigit(rec.YearLevel),
		Branch:            rec.Campus,
		Program:           expandProgram(rec.Course),
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}
}
