package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/red-flag-checker/internal/assessment"
	"github.com/denisok6893-rgb/red-flag-checker/internal/calculator"
	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
	"github.com/denisok6893-rgb/red-flag-checker/internal/share"
	"github.com/denisok6893-rgb/red-flag-checker/internal/storage"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "poolcalc",
		Short:         "Score relationship red flags and estimate dating pool sizes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", false, "print results as JSON")

	root.AddCommand(
		newScoreCommand(),
		newRiskCommand(),
		newPoolCommand(),
		newShareCommand(),
	)
	return root
}

// selectionFlags are shared by commands that take trait ratings.
type selectionFlags struct {
	file        string
	set         []string
	catalogPath string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "file", "", "JSON file of trait id -> level")
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "rating as trait_id=level (repeatable)")
	cmd.Flags().StringVar(&f.catalogPath, "catalog", "", "JSON catalog replacing the built-in traits")
}

func (f *selectionFlags) selections() (domain.Selections, error) {
	sel := domain.Selections{}
	if f.file != "" {
		loaded, err := storage.LoadSelectionsFromFile(f.file)
		if err != nil {
			return nil, err
		}
		sel = loaded
	}
	for _, kv := range f.set {
		id, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: want trait_id=level", kv)
		}
		level, ok := assessment.ParseLevel(raw)
		if !ok {
			return nil, fmt.Errorf("--set %q: unknown level %q", kv, raw)
		}
		sel[strings.TrimSpace(id)] = level
	}
	return sel, nil
}

func (f *selectionFlags) engine() (*assessment.Engine, error) {
	if f.catalogPath == "" {
		return assessment.NewEngine(assessment.DefaultCatalog()), nil
	}
	c, err := assessment.LoadCatalogFromFile(f.catalogPath)
	if err != nil {
		return nil, err
	}
	return assessment.NewEngine(c), nil
}

type scoreOutput struct {
	Score     domain.ScoreResult             `json:"score"`
	Risk      assessment.RiskAssessment      `json:"risk"`
	Verdict   assessment.RelationshipVerdict `json:"verdict"`
	Advice    []string                       `json:"advice"`
	Satirical assessment.SatiricalVerdict    `json:"satirical"`
}

func assess(e *assessment.Engine, sel domain.Selections) scoreOutput {
	score := e.ComputeScore(sel)
	return scoreOutput{
		Score:     score,
		Risk:      assessment.ClassifyRisk(score.RedScore),
		Verdict:   assessment.Verdict(score.NetScore),
		Advice:    e.Advice(score.NetScore, sel),
		Satirical: assessment.SatiricalAdvice(score.NetScore),
	}
}

func printScore(w io.Writer, out scoreOutput) {
	fmt.Fprintf(w, "Red flags:   %d\n", out.Score.RedScore)
	fmt.Fprintf(w, "Green flags: %d\n", out.Score.GreenScore)
	fmt.Fprintf(w, "Net score:   %d\n", out.Score.NetScore)
	fmt.Fprintf(w, "Risk:        %s\n", out.Risk.Level)
	fmt.Fprintf(w, "Verdict:     %s (%s)\n", out.Verdict.Title, out.Satirical.Title)
	for _, a := range out.Advice {
		fmt.Fprintf(w, "  - %s\n", a)
	}
}

func newScoreCommand() *cobra.Command {
	var flags selectionFlags
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a set of trait ratings",
		Example: `  poolcalc score --set communication_honesty=very_negative
  poolcalc score --file selections.json --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := flags.selections()
			if err != nil {
				return err
			}
			engine, err := flags.engine()
			if err != nil {
				return err
			}
			out := assess(engine, sel)
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printScore(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newRiskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "risk <red-score>",
		Short: "Classify a red score into a risk tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			red, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("red score must be an integer: %w", err)
			}
			risk := assessment.ClassifyRisk(red)
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), risk)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", risk.Level, risk.Message)
			return nil
		},
	}
}

func newPoolCommand() *cobra.Command {
	var (
		seeking string
		region  string
		set     []string
	)
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Estimate how many people match demographic criteria",
		Example: `  poolcalc pool --seeking male --set "Height=6-0" --set "Income=100k"
  poolcalc pool --seeking female --region western-europe --set "Race/Ethnicity=white"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var male bool
			switch seeking {
			case "male":
				male = true
			case "female":
			default:
				return fmt.Errorf("--seeking must be male or female, got %q", seeking)
			}

			values := make(map[string]string, len(set))
			for _, kv := range set {
				name, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("--set %q: want Criterion=value", kv)
				}
				values[strings.TrimSpace(name)] = strings.TrimSpace(value)
			}
			criteria, err := calculator.DefaultCriteria(male).SelectAll(values)
			if err != nil {
				return err
			}

			res := calculator.Compute(criteria, male, region)
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Region:           %s\n", res.Region)
			fmt.Fprintf(w, "Probability:      %.4f%% (±%.2f)\n", res.Probability, res.MarginOfError)
			fmt.Fprintf(w, "Matching people:  %.0f\n", res.PeopleCount)
			fmt.Fprintf(w, "Single and ready: %.0f\n", res.RealDatingPoolSize)
			fmt.Fprintf(w, "Confidence:       %s (%d factors)\n", res.ConfidenceLevel, res.FactorCount)
			fmt.Fprintf(w, "Delusion level:   %s\n", res.Delusion)
			if res.TopPercentile != "" {
				fmt.Fprintf(w, "Standards:        %s\n", res.TopPercentile)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&seeking, "seeking", "male", "gender sought: male or female")
	cmd.Flags().StringVar(&region, "region", calculator.DefaultRegion, "region: us, global, western-europe, east-asia, south-asia, latin-america, africa")
	cmd.Flags().StringArrayVar(&set, "set", nil, "selection as Criterion=value (repeatable)")
	return cmd
}

func newShareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Encode or decode share links",
	}

	var (
		flags   selectionFlags
		name    string
		baseURL string
	)
	encode := &cobra.Command{
		Use:   "encode",
		Short: "Build a share link for a set of ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := flags.selections()
			if err != nil {
				return err
			}
			link, err := share.Link(baseURL, name, sel)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	flags.register(encode)
	encode.Flags().StringVar(&name, "name", storage.DefaultDisplayName, "profile name shown to the recipient")
	encode.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080/", "page the link points to")

	decode := &cobra.Command{
		Use:   "decode <link-or-payload>",
		Short: "Decode a share link and score it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				p   share.Payload
				err error
			)
			if strings.Contains(args[0], share.FragmentPrefix) {
				p, err = share.ParseFragment(args[0])
			} else {
				p, err = share.Decode(args[0])
			}
			if err != nil {
				return err
			}

			out := assess(assessment.NewEngine(assessment.DefaultCatalog()), p.Selections)
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"shared": p, "assessment": out})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile: %s (%d ratings)\n", p.Name, len(p.Selections))
			printScore(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
