package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krishna0743/careerguid-ai/internal/matching"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Rank careers by overlap with the given skills",
	Run: func(cmd *cobra.Command, _ []string) {
		skills, _ := cmd.Flags().GetString("skills")
		count, _ := cmd.Flags().GetInt("count")

		env := bootstrap()
		results := matching.Match(env.store, skills, count)

		if err := printJSON(cmd.OutOrStdout(), results); err != nil {
			env.logger.Fatal("printing prediction", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().StringP("skills", "s", "", "comma separated skills, e.g. \"Programming, AI\"")
	predictCmd.Flags().IntP("count", "n", 1, "number of careers to return")

	predictCmd.MarkFlagRequired("skills")
}

func printJSON(w io.Writer, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(pretty))
	return err
}
