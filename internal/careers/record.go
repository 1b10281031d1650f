package careers

import (
	"strings"
)

const (
	ColumnCategory  = "Career_category"
	ColumnSkill     = "Skill"
	ColumnInterests = "Interests"
	ColumnHobby     = "Hobby"
	ColumnCareer    = "Career"
	ColumnEducation = "Recommended_education"

	// NotAvailable is displayed for missing career details.
	NotAvailable = "N/A"
)

// Record is a single dataset row. Skill-bearing fields are optional: an empty
// string means the column was absent or blank for that row.
type Record struct {
	Category  string `mapstructure:"Career_category"`
	Skill     string `mapstructure:"Skill"`
	Interests string `mapstructure:"Interests"`
	Hobby     string `mapstructure:"Hobby"`
	Career    string `mapstructure:"Career"`
	Education string `mapstructure:"Recommended_education"`

	tokens map[string]struct{}
}

// SkillFields returns the present skill-bearing fields in column order.
func (r *Record) SkillFields() []string {
	fields := make([]string, 0, 3)
	for _, f := range []string{r.Skill, r.Interests, r.Hobby} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Combined joins the present skill-bearing fields into one comma separated string.
func (r *Record) Combined() string {
	return strings.Join(r.SkillFields(), ", ")
}

// Skills returns the record token set. The set is built when the record is
// added to a Store; callers must not modify it.
func (r *Record) Skills() map[string]struct{} {
	return r.tokens
}

// CareerName returns the career title or N/A.
func (r *Record) CareerName() string {
	return orNotAvailable(r.Career)
}

// EducationName returns the recommended education or N/A.
func (r *Record) EducationName() string {
	return orNotAvailable(r.Education)
}

// CategoryName returns the category or N/A.
func (r *Record) CategoryName() string {
	return orNotAvailable(r.Category)
}

func (r *Record) index() {
	r.tokens = make(map[string]struct{})
	for _, field := range r.SkillFields() {
		for _, token := range Tokenize(field) {
			r.tokens[token] = struct{}{}
		}
	}
}

// Tokenize splits a comma separated list into lowercase trimmed tokens,
// dropping empty pieces. Duplicates are kept in input order.
func Tokenize(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}
