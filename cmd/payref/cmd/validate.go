package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/payref/internal/reference"
)

// ValidationResult holds the validation outcome for one reference
type ValidationResult struct {
	Reference string `json:"reference"`
	Kind      string `json:"kind"`
	Valid     bool   `json:"valid"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [references...]",
	Short: "Validate payment references",
	Long: `Validate one or more creditor references.

The kind is detected from the shape: references starting with RF are
checked with MOD 97-10, all-digit references with the 7-3-1 check digit.

Examples:
  payref validate RF97C2H5OH
  payref validate "86851 62596 19897" RF40C2H5OH --format table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	results := make([]*ValidationResult, 0, len(args))
	allValid := true

	for _, arg := range args {
		kind, valid := reference.Validate(arg)
		logger.Debug("reference validated", "reference", arg, "kind", kind, "valid", valid)

		results = append(results, &ValidationResult{
			Reference: reference.Compact(arg),
			Kind:      string(kind),
			Valid:     valid,
		})
		if !valid {
			allValid = false
		}
	}

	w := cmd.OutOrStdout()
	if outputFormat == "json" {
		if err := outputJSON(w, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(w, "✓ %s: VALID (%s)\n", r.Reference, r.Kind)
			} else {
				fmt.Fprintf(w, "✗ %s: INVALID (%s)\n", r.Reference, r.Kind)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some references")
	}
	return nil
}
