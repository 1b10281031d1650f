package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krishna0743/careerguid-ai/internal/matching"
	"github.com/krishna0743/careerguid-ai/internal/resume"
)

type analyzeOutput struct {
	ExtractedSkills string          `json:"extracted_skills"`
	CareerDetails   matching.Result `json:"career_details"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume text]",
	Short: "Extract known skills from a resume and suggest a career",
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")

		env := bootstrap()

		text, err := resumeText(file, args)
		if err != nil {
			env.logger.Fatal("reading resume", zap.Error(err))
		}

		analysis := matching.AnalyzeResume(env.store, text)
		env.logger.Debug("resume analyzed", zap.Strings("skills", analysis.Skills), zap.Bool("found", analysis.Found))

		if err := printJSON(cmd.OutOrStdout(), analyzeOutput{
			ExtractedSkills: matching.JoinSkills(analysis.Skills),
			CareerDetails:   analysis.Best,
		}); err != nil {
			env.logger.Fatal("printing analysis", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("file", "f", "", "resume file (.txt, .md, .pdf or .docx)")
}

// resumeText reads the resume from file when set, otherwise joins args.
func resumeText(file string, args []string) (string, error) {
	if file == "" {
		if len(args) == 0 {
			return "", errors.New("either --file or resume text is required")
		}
		return strings.Join(args, " "), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}

	return resume.ExtractText(resume.DetectMIME("", filepath.Base(file)), data)
}
