package students

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/jmtrinidad26/ScholarManager/app/models"
)

func TestExpandProgram(t *testing.T) {
	cases := []struct {
		course string
		want   string
	}{
		{"BSCS", "Bachelor of Science in Computer Science"},
		{"BSIT", "Bachelor of Science in Information Technology"},
		{"BSHM", "BSHM"},
		{"", ""},
		// Expansion is total: an already-expanded name passes through.
		{"Bachelor of Science in Computer Science", "Bachelor of Science in Computer Science"},
	}
	for _, tc := range cases {
		if got := expandProgram(tc.course); got != tc.want {
			t.Errorf("expandProgram(%q) = %q, want %q", tc.course, got, tc.want)
		}
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		full  string
		first string
		last  string
	}{
		{"Juan Dela Cruz", "Juan", "Dela Cruz"},
		{"Madonna", "Madonna", ""},
		{"", "", ""},
		{"  John   Martin  Nigos ", "John", "Martin Nigos"},
	}
	for _, tc := range cases {
		first, last := splitName(tc.full)
		if first != tc.first || last != tc.last {
			t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)", tc.full, first, last, tc.first, tc.last)
		}
	}
}

func TestYearDigit(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"3rd Year", "3"},
		{"Year 12", "1"},
		{"Freshman", ""},
		{"", ""},
		{"2", "2"},
	}
	for _, tc := range cases {
		got := yearDigit(tc.label)
		if got != tc.want {
			t.Errorf("yearDigit(%q) = %q, want %q", tc.label, got, tc.want)
		}
		if len(got) > 1 {
			t.Errorf("yearDigit(%q) returned more than one character: %q", tc.label, got)
		}
	}
}

func TestNormalizeMasterlist(t *testing.T) {
	rec := &models.MasterlistRecord{
		StudentID:         2000221234,
		ScholarName:       "Juan Dela Cruz",
		SchoolEmail:       "juan.cruz@sti.edu",
		YearLevel:         "3rd Year",
		Course:            "BSCS",
		Campus:            "STI Ortigas-Cainta",
		GraduationYear:    sql.NullInt64{Int64: 2026, Valid: true},
		ScholarshipStatus: "Active",
	}

	got := normalizeMasterlist(rec)

	if got.ID != "2000221234" || got.StudentNumber != "2000221234" {
		t.Errorf("identifier = (%q, %q), want stringified numeric id", got.ID, got.StudentNumber)
	}
	if got.FirstName != "Juan" || got.LastName != "Dela Cruz" {
		t.Errorf("name split = (%q, %q)", got.FirstName, got.LastName)
	}
	if got.Program != "Bachelor of Science in Computer Science" {
		t.Errorf("program = %q", got.Program)
	}
	if got.Year != "3" {
		t.Errorf("year = %q, want \"3\"", got.Year)
	}
	if got.Branch != "STI Ortigas-Cainta" {
		t.Errorf("branch = %q", got.Branch)
	}
	if got.GraduationYear == nil || *got.GraduationYear != 2026 {
		t.Errorf("graduation year = %v, want 2026", got.GraduationYear)
	}
	if got.ScholarshipStatus != "Active" {
		t.Errorf("scholarship status = %q", got.ScholarshipStatus)
	}
	if got.CreatedAt == "" {
		t.Error("createdAt should be set to normalization time")
	}
}

// Rejoining the split name with one space recovers the trimmed original when
// the name contains at least one space.
func TestNormalizeNameRoundTrip(t *testing.T) {
	names := []string{"Juan Dela Cruz", "Great Britain Rendon", "Toyo Ashley Aguilar"}
	for _, name := range names {
		rec := &models.MasterlistRecord{StudentID: 1, ScholarName: name}
		got := normalizeMasterlist(rec)
		rejoined := got.FirstName + " " + got.LastName
		if rejoined != strings.TrimSpace(name) {
			t.Errorf("rejoined name %q != original %q", rejoined, name)
		}
	}
}

func TestNormalizeMasterlistDegradesGracefully(t *testing.T) {
	got := normalizeMasterlist(&models.MasterlistRecord{})
	if got.FirstName != "" || got.LastName != "" || got.Year != "" {
		t.Errorf("empty record should normalize to empty strings, got %+v", got)
	}
	if got.ID != "0" {
		t.Errorf("id = %q, want \"0\"", got.ID)
	}
	if got.GraduationYear != nil {
		t.Errorf("graduation year = %v, want nil", got.GraduationYear)
	}
}
