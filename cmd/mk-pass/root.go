package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/2bndy5/mk-pass/internal/crypto"
	"github.com/spf13/cobra"
)

// requirementFlags binds the requirement flags shared by every command.
type requirementFlags struct {
	length          int
	numbers         int
	specials        int
	noFirstIsLetter bool
	allowRepeats    bool
}

func (f *requirementFlags) register(cmd *cobra.Command) {
	def := crypto.DefaultRequirements()
	flags := cmd.PersistentFlags()
	flags.IntVarP(&f.length, "length", "l", def.Length, "The length of the password.")
	flags.IntVarP(&f.numbers, "numbers", "n", def.Numbers, "How many numeric characters should the password contain?")
	flags.IntVarP(&f.specials, "specials", "s", def.Specials, "How many special characters should the password contain?")
	flags.BoolVarP(&f.noFirstIsLetter, "no-first-is-letter", "f", false,
		"Do not restrict the first character to only letters.\nBy default, the first character is always a letter.")
	flags.BoolVarP(&f.allowRepeats, "allow-repeats", "r", false, "Allow characters to be used more than once.")
}

func (f *requirementFlags) requirements() crypto.Requirements {
	return crypto.Requirements{
		Length:        f.length,
		Numbers:       f.numbers,
		Specials:      f.specials,
		AllowRepeats:  f.allowRepeats,
		FirstIsLetter: !f.noFirstIsLetter,
	}
}

type requirementsJSON struct {
	Length        int  `json:"length"`
	Numbers       int  `json:"numbers"`
	Specials      int  `json:"specials"`
	AllowRepeats  bool `json:"allow_repeats"`
	FirstIsLetter bool `json:"first_is_letter"`
}

func toJSON(r crypto.Requirements) requirementsJSON {
	return requirementsJSON{
		Length:        r.Length,
		Numbers:       r.Numbers,
		Specials:      r.Specials,
		AllowRepeats:  r.AllowRepeats,
		FirstIsLetter: r.FirstIsLetter,
	}
}

func newRootCmd(rng io.Reader) *cobra.Command {
	var (
		flags  requirementFlags
		count  int
		raw    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:           "mk-pass",
		Short:         "Generate a password comprehensively.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			reqs := flags.requirements()
			if !raw {
				reqs = reqs.Validate()
			}

			passwords := make([]string, 0, count)
			for i := 0; i < count; i++ {
				password, err := crypto.Generate(reqs, rng)
				if err != nil {
					return err
				}
				passwords = append(passwords, password)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, struct {
					Passwords    []string         `json:"passwords"`
					Requirements requirementsJSON `json:"requirements"`
				}{passwords, toJSON(reqs)})
			}
			for _, p := range passwords {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Write output as JSON.")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "How many passwords to generate.")
	cmd.Flags().BoolVar(&raw, "raw", false, "Use the requirements as given instead of clamping them first.")

	cmd.AddCommand(newValidateCmd(&flags, &asJSON))
	return cmd
}

func newValidateCmd(flags *requirementFlags, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Print the requirements after clamping them to a satisfiable range.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			validated := flags.requirements().Validate()
			out := cmd.OutOrStdout()
			if *asJSON {
				return writeJSON(out, toJSON(validated))
			}
			fmt.Fprintf(out, "length: %d\nnumbers: %d\nspecials: %d\nallow repeats: %t\nfirst is letter: %t\n",
				validated.Length, validated.Numbers, validated.Specials, validated.AllowRepeats, validated.FirstIsLetter)
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
