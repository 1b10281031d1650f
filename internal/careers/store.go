// Package careers holds the read-only career dataset and its views.
package careers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Store is an immutable in-memory career table. It is safe for concurrent readers.
type Store struct {
	records  []Record
	fallback bool
}

// NewStore builds a store over a copy of the given records.
func NewStore(records []Record) *Store {
	copied := make([]Record, len(records))
	copy(copied, records)
	for i := range copied {
		copied[i].index()
	}
	return &Store{records: copied}
}

// Fallback returns the built-in table used when no dataset is available.
func Fallback() *Store {
	s := NewStore([]Record{
		{
			Category:  "Technology",
			Skill:     "Programming, AI",
			Interests: "Video Games, Robotics",
			Hobby:     "Coding, Reading",
			Career:    "Software Engineer",
			Education: "Bachelor's in CS",
		},
		{
			Category:  "Healthcare",
			Skill:     "Empathy, Biology",
			Interests: "Patient Care, Research",
			Hobby:     "Volunteering, Fitness",
			Career:    "Nurse",
			Education: "BSN",
		},
		{
			Category:  "Education",
			Skill:     "Teaching, Communication",
			Interests: "Mentoring, Learning",
			Hobby:     "Tutoring, Public Speaking",
			Career:    "High School Teacher",
			Education: "Master's in Education",
		},
	})
	s.fallback = true
	return s
}

// Load reads the dataset at path. It never fails: a missing, unreadable or
// empty source is replaced by the fallback table and a warning is logged.
func Load(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	records, err := readFile(path)
	if err == nil && len(records) == 0 {
		err = errors.New("dataset has no rows")
	}
	if err != nil {
		logger.Warn("loading career dataset failed, using the built-in table",
			zap.String("path", path),
			zap.Error(err),
		)
		return Fallback()
	}

	logger.Info("career dataset loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)

	return NewStore(records)
}

func readFile(path string) ([]Record, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("dataset path is not configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses CSV with a header row into records. Columns are matched by
// name, unknown columns are ignored and rows without a category are skipped.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	for i, name := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		values := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(row) {
				values[name] = row[i]
			}
		}

		var rec Record
		if err := mapstructure.Decode(values, &rec); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", len(records)+1, err)
		}

		if strings.TrimSpace(rec.Category) == "" {
			continue
		}

		records = append(records, rec)
	}

	return records, nil
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// IsFallback reports whether the store holds the built-in table.
func (s *Store) IsFallback() bool { return s.fallback }

// Records returns the records in dataset order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Categories returns the distinct categories sorted lexicographically.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, rec := range s.records {
		if rec.Category == "" {
			continue
		}
		if _, ok := seen[rec.Category]; ok {
			continue
		}
		seen[rec.Category] = struct{}{}
		categories = append(categories, rec.Category)
	}
	sort.Strings(categories)
	return categories
}

// RowsForCategory returns the combined skill string of every row in the
// category, compared case-insensitively, in dataset order.
func (s *Store) RowsForCategory(category string) []string {
	rows := make([]string, 0)
	for _, rec := range s.records {
		if !strings.EqualFold(rec.Category, category) {
			continue
		}
		if combined := rec.Combined(); combined != "" {
			rows = append(rows, combined)
		}
	}
	return rows
}

// SkillTokens returns every distinct token across all rows in first-occurrence order.
func (s *Store) SkillTokens() []string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0)
	for _, rec := range s.records {
		for _, field := range rec.SkillFields() {
			for _, token := range Tokenize(field) {
				if _, ok := seen[token]; ok {
					continue
				}
				seen[token] = struct{}{}
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

// KnownSkills returns the distinct raw skill, interest and hobby values of
// rows where all three are present, sorted.
func (s *Store) KnownSkills() []string {
	seen := make(map[string]struct{})
	known := make([]string, 0)
	for _, rec := range s.records {
		fields := rec.SkillFields()
		if len(fields) != 3 {
			continue
		}
		for _, field := range fields {
			value := strings.TrimSpace(field)
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			known = append(known, value)
		}
	}
	sort.Strings(known)
	return known
}
