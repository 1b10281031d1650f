package matching

import (
	"testing"

	"github.com/krishna0743/careerguid-ai/internal/careers"
)

func TestAnalyzeResumeFallbackScenario(t *testing.T) {
	analysis := AnalyzeResume(careers.Fallback(), "I love Coding and READING books")

	if !contains(analysis.Skills, "coding") || !contains(analysis.Skills, "reading") {
		t.Fatalf("expected coding and reading, got %v", analysis.Skills)
	}
	if !analysis.Found {
		t.Fatalf("expected a match")
	}
	if analysis.Best.Career != "Software Engineer" {
		t.Fatalf("unexpected career: %+v", analysis.Best)
	}
	if analysis.Best.Score != 2 {
		t.Fatalf("expected score 2, got %d", analysis.Best.Score)
	}
}

func TestAnalyzeResumeNoSkills(t *testing.T) {
	analysis := AnalyzeResume(careers.Fallback(), "Forklift certified, enjoys hiking")

	if len(analysis.Skills) != 0 {
		t.Fatalf("expected no skills, got %v", analysis.Skills)
	}
	if analysis.Found {
		t.Fatalf("did not expect a match")
	}
	if analysis.Best != NoMatch {
		t.Fatalf("expected placeholder, got %+v", analysis.Best)
	}
}

func TestExtractSkillsMatchesSubstrings(t *testing.T) {
	// "ai" is found inside "air".
	skills := ExtractSkills(careers.Fallback(), "Licensed air traffic controller")
	if !contains(skills, "ai") {
		t.Fatalf("expected substring match for ai, got %v", skills)
	}
}

func TestExtractSkillsKeepsTokenOrder(t *testing.T) {
	store := careers.NewStore([]careers.Record{
		{Category: "A", Skill: "sql, go"},
		{Category: "B", Skill: "docker"},
	})

	got := ExtractSkills(store, "docker and go and sql")
	want := []string{"sql", "go", "docker"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func contains(items []string, needle string) bool {
	for _, item := range items {
		if item == needle {
			return true
		}
	}
	return false
}
