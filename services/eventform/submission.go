package eventform

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Submission is the single multipart payload an event create/update sends:
// scalar fields plus JSON-stringified structured fields in Fields, raw new
// image files in Files. Existing-image retention and deletion ride along as
// JSON arrays of stable identifiers.
type Submission struct {
	Fields map[string]string
	Files  []PendingImage
}

// BuildSubmission assembles the draft into its wire payload. Structured
// fields are JSON strings; new images stay raw file parts.
func BuildSubmission(d *Draft) (*Submission, error) {
	location, err := json.Marshal(d.Location)
	if err != nil {
		return nil, fmt.Errorf("error marshaling location: %v", err)
	}
	rules, err := json.Marshal(ruleList(d.Rules))
	if err != nil {
		return nil, fmt.Errorf("error marshaling rules: %v", err)
	}
	equipment, err := json.Marshal(equipmentList(d.Equipment))
	if err != nil {
		return nil, fmt.Errorf("error marshaling equipment: %v", err)
	}
	existing, err := json.Marshal(existingIDs(d.Images.Existing))
	if err != nil {
		return nil, fmt.Errorf("error marshaling existing images: %v", err)
	}
	deleted, err := json.Marshal(deletedList(d.Images.Deleted))
	if err != nil {
		return nil, fmt.Errorf("error marshaling deleted images: %v", err)
	}

	return &Submission{
		Fields: map[string]string{
			"name":            d.Name,
			"category":        d.Category,
			"description":     d.Description,
			"date":            d.Date,
			"time":            d.Time,
			"location":        string(location),
			"maxParticipants": strconv.Itoa(d.MaxParticipants),
			"registrationFee": strconv.FormatFloat(d.RegistrationFee, 'f', -1, 64),
			"difficulty":      d.Difficulty,
			"eventType":       d.EventType,
			"rules":           string(rules),
			"equipment":       string(equipment),
			"existingImages":  string(existing),
			"deletedImages":   string(deleted),
		},
		Files: d.Images.Pending,
	}, nil
}

// ParseSubmission rebuilds a draft from the multipart value map. File parts
// are validated and attached by the caller, which owns their lifecycle.
func ParseSubmission(values map[string][]string) (*Draft, error) {
	d := NewDraft()
	d.Name = firstValue(values, "name")
	d.Category = firstValue(values, "category")
	d.Description = firstValue(values, "description")
	d.Date = firstValue(values, "date")
	d.Time = firstValue(values, "time")
	d.Difficulty = firstValue(values, "difficulty")
	if v := firstValue(values, "eventType"); v != "" {
		d.EventType = v
	}

	if v := firstValue(values, "maxParticipants"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid maxParticipants: %q", v)
		}
		d.MaxParticipants = n
	}
	if v := firstValue(values, "registrationFee"); v != "" {
		fee, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid registrationFee: %q", v)
		}
		d.RegistrationFee = fee
	}

	if v := firstValue(values, "location"); v != "" {
		if err := json.Unmarshal([]byte(v), &d.Location); err != nil {
			return nil, fmt.Errorf("invalid location JSON: %v", err)
		}
	}
	if v := firstValue(values, "rules"); v != "" {
		if err := json.Unmarshal([]byte(v), &d.Rules); err != nil {
			return nil, fmt.Errorf("invalid rules JSON: %v", err)
		}
	}
	if v := firstValue(values, "equipment"); v != "" {
		if err := json.Unmarshal([]byte(v), &d.Equipment); err != nil {
			return nil, fmt.Errorf("invalid equipment JSON: %v", err)
		}
	}

	if v := firstValue(values, "existingImages"); v != "" {
		var ids []string
		if err := json.Unmarshal([]byte(v), &ids); err != nil {
			return nil, fmt.Errorf("invalid existingImages JSON: %v", err)
		}
		for _, id := range ids {
			d.Images.Existing = append(d.Images.Existing, ExistingImage{ID: id})
		}
	}
	if v := firstValue(values, "deletedImages"); v != "" {
		if err := json.Unmarshal([]byte(v), &d.Images.Deleted); err != nil {
			return nil, fmt.Errorf("invalid deletedImages JSON: %v", err)
		}
	}

	return d, nil
}

func firstValue(values map[string][]string, key string) string {
	if vs, ok := values[key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// JSON-encode empty lists as [], not null, so the backend array contract
// holds even for untouched fields.
func ruleList(rules []string) []string {
	if rules == nil {
		return []string{}
	}
	return rules
}

func equipmentList(items []EquipmentItem) []EquipmentItem {
	if items == nil {
		return []EquipmentItem{}
	}
	return items
}

func deletedList(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func existingIDs(imgs []ExistingImage) []string {
	ids := make([]string, 0, len(imgs))
	for _, img := range imgs {
		ids = append(ids, img.ID)
	}
	return ids
}
