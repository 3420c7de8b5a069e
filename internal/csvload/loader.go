// ABOUTME: CSV loader for session test data.
// ABOUTME: Parses the data.csv column layout into immutable Session records.
package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/scurfo/perfdash/internal/models"
)

// DateLayout is the calendar-date format used in session CSV files.
const DateLayout = "2006-01-02"

// Required columns. Paired measurement columns follow the
// <test>_<field>_<side> convention of the exported dashboard data.
var requiredColumns = []string{
	"athlete", "date", "date_of_birth", "injury_date", "body_mass",
	"knee_extension_force_left", "knee_extension_lever_left",
	"knee_extension_force_right", "knee_extension_lever_right",
	"knee_flexion_force_left", "knee_flexion_lever_left",
	"knee_flexion_force_right", "knee_flexion_lever_right",
	"calf_force_left", "calf_force_right",
	"sl_jump_height_left", "sl_jump_height_right",
	"rsid_left", "rsid_right",
}

// LoadFile reads sessions from a CSV file on disk.
func LoadFile(path string) ([]*models.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads sessions from CSV data. The first record must be a header row
// containing every required column; extra columns are ignored. Rows with an
// empty athlete are skipped, matching how the dashboard drops null athletes.
func Load(r io.Reader) ([]*models.Session, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", name)
		}
	}

	var sessions []*models.Session
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		s, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if s == nil {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func parseRow(record []string, cols map[string]int) (*models.Session, error) {
	field := func(name string) string { return record[cols[name]] }

	athlete := field("athlete")
	if athlete == "" {
		return nil, nil
	}

	date, err := parseDate(field("date"))
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	bodyMass, err := parseFloat(field("body_mass"))
	if err != nil {
		return nil, fmt.Errorf("body_mass: %w", err)
	}

	s := models.NewSession(athlete, date, bodyMass)

	if dob := field("date_of_birth"); dob != "" {
		t, err := parseDate(dob)
		if err != nil {
			return nil, fmt.Errorf("date_of_birth: %w", err)
		}
		s.WithBirthDate(t)
	}
	if inj := field("injury_date"); inj != "" {
		t, err := parseDate(inj)
		if err != nil {
			return nil, fmt.Errorf("injury_date: %w", err)
		}
		s.WithInjuryDate(t)
	}

	pairs := []struct {
		leftCol, rightCol string
		dst               *models.Pair
	}{
		{"knee_extension_force_left", "knee_extension_force_right", &s.KneeExtension.Force},
		{"knee_extension_lever_left", "knee_extension_lever_right", &s.KneeExtension.Lever},
		{"knee_flexion_force_left", "knee_flexion_force_right", &s.KneeFlexion.Force},
		{"knee_flexion_lever_left", "knee_flexion_lever_right", &s.KneeFlexion.Lever},
		{"calf_force_left", "calf_force_right", &s.CalfForce},
		{"sl_jump_height_left", "sl_jump_height_right", &s.JumpHeight},
		{"rsid_left", "rsid_right", &s.RSID},
	}
	for _, p := range pairs {
		if p.dst.Left, err = parseFloat(field(p.leftCol)); err != nil {
			return nil, fmt.Errorf("%s: %w", p.leftCol, err)
		}
		if p.dst.Right, err = parseFloat(field(p.rightCol)); err != nil {
			return nil, fmt.Errorf("%s: %w", p.rightCol, err)
		}
	}

	return s, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
