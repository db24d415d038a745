package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// csvAliases maps normalized header names to canonical field names, so the
// loader tolerates the header variants different spreadsheet exports produce.
var csvAliases = map[string]string{
	"ref":           "ref",
	"name":          "name",
	"project":       "name",
	"branch":        "branch",
	"start_date":    "start_date",
	"start":         "start_date",
	"end_date":      "end_date",
	"end":           "end_date",
	"assignees":     "assignees",
	"assigned_to":   "assignees",
	"days_required": "days_required",
	"days":          "days_required",
	"priority":      "priority",
	"type":          "type",
	"blocked_by":    "blocked_by",
	"blocks_to":     "blocks_to",
	"reported_load": "reported_load",
	"parent_ref":    "parent_ref",
	"parent":        "parent_ref",
}

// LoadCSV reads a header-mapped CSV project list. Unknown columns are
// ignored; a file without a name column is rejected outright since every
// other field is optional.
func LoadCSV(path string) (*ImportSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	columns := make(map[string]int)
	for i, h := range header {
		if canonical, ok := csvAliases[normalizeHeader(h)]; ok {
			if _, dup := columns[canonical]; !dup {
				columns[canonical] = i
			}
		}
	}
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("CSV header has no name column (got %s)", strings.Join(header, ", "))
	}

	schema := &ImportSchema{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV line %d: %w", line, err)
		}
		if isBlankRecord(record) {
			continue
		}

		cell := func(field string) string {
			idx, ok := columns[field]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		p := ProjectImport{
			Ref:       cell("ref"),
			Name:      cell("name"),
			Branch:    cell("branch"),
			Priority:  strings.ToLower(cell("priority")),
			Type:      cell("type"),
			BlockedBy: cell("blocked_by"),
			BlocksTo:  cell("blocks_to"),
			Assignees: splitPeople(cell("assignees")),
		}
		if s := cell("start_date"); s != "" {
			p.StartDate = &s
		}
		if s := cell("end_date"); s != "" {
			p.EndDate = &s
		}
		if s := cell("parent_ref"); s != "" {
			p.ParentRef = &s
		}
		if s := cell("days_required"); s != "" {
			v, err := strconv.ParseFloat(decimalComma(s), 64)
			if err != nil {
				return nil, fmt.Errorf("CSV line %d: invalid days_required %q", line, s)
			}
			p.DaysRequired = v
		}
		if s := cell("reported_load"); s != "" {
			v, err := strconv.ParseFloat(decimalComma(s), 64)
			if err != nil {
				return nil, fmt.Errorf("CSV line %d: invalid reported_load %q", line, s)
			}
			p.ReportedLoad = &v
		}
		schema.Projects = append(schema.Projects, p)
	}
	return schema, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

func isBlankRecord(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// splitPeople breaks an assignee cell on semicolons or commas, trimming
// whitespace and dropping empties.
func splitPeople(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ';' || r == ','
	})
	var people []string
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			people = append(people, name)
		}
	}
	return people
}

// decimalComma converts "2,5" to "2.5" for spreadsheet locales that export
// comma decimals. Only applied when the cell has no dot already.
func decimalComma(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return strings.ReplaceAll(s, ",", ".")
}
