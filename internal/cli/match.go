package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"variant-match/internal/app"
	"variant-match/internal/types"
)

type matchOptions struct {
	ConsumerSchema string
	ProducerSchema string
	Request        string
	Candidates     string
	OutputDir      string
	Explain        bool
}

func newMatchCommand() *cobra.Command {
	opts := matchOptions{}
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match candidate variants against requested attributes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatch(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConsumerSchema, "schema", "", "Consumer schema path")
	cmd.Flags().StringVar(&opts.ProducerSchema, "producer-schema", "", "Producer schema path (optional)")
	cmd.Flags().StringVar(&opts.Request, "request", "", "Requested attributes file")
	cmd.Flags().StringVar(&opts.Candidates, "candidates", "", "Candidate variants file")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().BoolVar(&opts.Explain, "explain", false, "Record the elimination trace in the report")

	_ = viper.BindPFlag("schema", cmd.Flags().Lookup("schema"))
	_ = viper.BindPFlag("producer_schema", cmd.Flags().Lookup("producer-schema"))
	_ = viper.BindPFlag("request", cmd.Flags().Lookup("request"))
	_ = viper.BindPFlag("candidates", cmd.Flags().Lookup("candidates"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("explain", cmd.Flags().Lookup("explain"))

	return cmd
}

func runMatch(ctx context.Context, cmd *cobra.Command, opts matchOptions) error {
	service := newAppService()
	result, err := service.Match(ctx, app.MatchRequest{
		ConsumerSchema: resolveString(cmd, opts.ConsumerSchema, "schema", "schema"),
		ProducerSchema: resolveString(cmd, opts.ProducerSchema, "producer_schema", "producer-schema"),
		RequestPath:    resolveString(cmd, opts.Request, "request", "request"),
		CandidatesPath: resolveString(cmd, opts.Candidates, "candidates", "candidates"),
		OutputDir:      resolveString(cmd, opts.OutputDir, "output", "output"),
		Explain:        resolveBool(cmd, opts.Explain, "explain", "explain"),
	})
	if err != nil {
		return err
	}
	return reportOutcome(result)
}

// reportOutcome turns the ordinary zero/many results into the
// resolver-facing failures.
func reportOutcome(result app.MatchResult) error {
	switch result.Outcome {
	case types.MatchOutcomeSelected:
		fmt.Printf("selected: %s\n", result.Selected[0])
		return nil
	case types.MatchOutcomeNone:
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no matching variant; see " + result.OutputDir + " for the report")
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("ambiguous variant match: " + strings.Join(result.Selected, ", "))
	}
}
