package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SkillCategory is one named group of skill strings. Categories are
// caller-defined; there is no fixed category set.
type SkillCategory struct {
	Name   string
	Skills []string
}

// SkillSet is an ordered sequence of skill categories. It marshals to a JSON
// object keyed by category name and preserves document order on decode, so
// flattened output stays deterministic across reads.
type SkillSet []SkillCategory

// Flatten returns every skill string in category-then-item order.
func (s SkillSet) Flatten() []string {
	var skills []string
	for _, category := range s {
		skills = append(skills, category.Skills...)
	}
	return skills
}

// MarshalJSON encodes the set as a JSON object in category order.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(category.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to encode category name: %w", err)
		}
		skills, err := json.Marshal(category.Skills)
		if err != nil {
			return nil, fmt.Errorf("failed to encode category %q: %w", category.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(skills)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into categories, keeping the order in
// which keys appear in the document.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode skills: %w", err)
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skills: expected JSON object, got %v", tok)
	}

	set := SkillSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode skills category name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: unexpected category key %v", keyTok)
		}

		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return fmt.Errorf("failed to decode skills category %q: %w", name, err)
		}
		set = append(set, SkillCategory{Name: name, Skills: skills})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode skills: %w", err)
	}

	*s = set
	return nil
}
