package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/snakeoutgen/generator/internal/api"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a level JSON file's solvability",
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateFile == "" {
			return fmt.Errorf("--file is required")
		}

		data, err := os.ReadFile(validateFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", validateFile, err)
		}

		var req api.ValidateRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("parse %s: %w", validateFile, err)
		}

		resp, err := api.Validate(req)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}

		if resp.IsSolvable {
			color.Green("solvable: %d snakes cleared in %d steps", resp.TotalSnakes, resp.Steps)
		} else {
			color.Red("unsolvable: %d of %d snakes remain after %d steps", resp.RemainedCount, resp.TotalSnakes, resp.Steps)
		}

		return json.NewEncoder(os.Stdout).Encode(resp)
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "path to a level JSON file")
}
