package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/candidatehub/server/internal/model"
)

var csvHeader = []string{"ID", "Name", "Email", "Contact", "Education", "Experience", "Skills", "Skills Score"}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// WriteCSV serializes profiles into a CSV report with a fixed column schema,
// one row per profile in input order. Absent scalar fields render as "N/A"
// and embedded line breaks in the free-text columns are flattened to single
// spaces. An empty input produces a header-only document.
func WriteCSV(profiles []model.Profile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, profile := range profiles {
		record := []string{
			orNA(profile.ID),
			orNA(profile.Name),
			orNA(profile.Email),
			orNA(profile.Contact),
			flattenText(profile.Education),
			flattenText(profile.Experience),
			strings.Join(profile.Skills.Flatten(), ", "),
			strconv.FormatFloat(profile.SkillsScore, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row for profile %s: %w", profile.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func flattenText(value string) string {
	if value == "" {
		return "N/A"
	}
	return strings.TrimSpace(lineBreaks.Replace(value))
}
