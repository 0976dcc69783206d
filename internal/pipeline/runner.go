// internal/pipeline/runner.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seurahaku/harava/internal/artifact"
)

// Run invokes one stage under the shared contract: a missing upstream
// artifact is fatal before any network action, resume short-circuits
// on an existing output, and dry-run stops after validation.
func Run(ctx context.Context, stage Stage, opts Options) (*StageResult, error) {
	logger := log.With().Str("stage", stage.Name()).Logger()

	if input := stage.RequiredInput(); input != "" && !artifact.Exists(input) {
		return nil, NewStageError(ErrCodeMissingInput, stage.Name(),
			fmt.Sprintf("%s does not exist, run the previous stage first", input),
			ErrMissingInput).WithDetail("input", input)
	}

	if opts.Resume && artifact.Exists(stage.OutputPath()) {
		logger.Info().Str("output", stage.OutputPath()).Msg("Output exists, resuming past this stage")
		return &StageResult{
			Stage:      stage.Name(),
			OutputPath: stage.OutputPath(),
			ResumeSkip: true,
		}, nil
	}

	if opts.DryRun {
		logger.Info().Str("output", stage.OutputPath()).Msg("Dry run, no pages will be visited")
		return &StageResult{
			Stage:      stage.Name(),
			OutputPath: stage.OutputPath(),
			DryRun:     true,
		}, nil
	}

	logger.Info().Msg("Stage starting")
	start := time.Now()

	result, err := stage.Execute(ctx, opts)
	if err != nil {
		var se *StageError
		if !errors.As(err, &se) {
			err = NewStageError(ErrCodeSession, stage.Name(), "stage failed", err)
		}
		logger.Error().Err(err).Msg("Stage failed")
		return nil, err
	}

	result.Stage = stage.Name()
	result.OutputPath = stage.OutputPath()
	result.Duration = time.Since(start)

	logger.Info().
		Int("processed", result.Processed()).
		Int("skipped", len(result.Skipped())).
		Int("records", result.Records).
		Dur("duration", result.Duration).
		Str("output", result.OutputPath).
		Msg("Stage complete")

	return result, nil
}

// RunAll executes stages in order with the politeness delay between
// them, stopping at the first failure. Completed results are returned
// alongside the error so the caller can report partial progress.
func RunAll(ctx context.Context, stages []Stage, opts Options) ([]*StageResult, error) {
	var results []*StageResult

	for i, stage := range stages {
		if i > 0 && opts.Delay > 0 {
			select {
			case <-time.After(opts.Delay):
			case <-ctx.Done():
				return results, ctx.Err()
			}
		}

		result, err := Run(ctx, stage, opts)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}
