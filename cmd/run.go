package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ftracker/internal/logger"
	"github.com/misterclayt0n/ftracker/internal/models"
	"github.com/misterclayt0n/ftracker/internal/training"
	"github.com/misterclayt0n/ftracker/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runFromStdin bool
	runSave      bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Compute workout summaries from a TOML package file, stdin or the built-in packages",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if runFromStdin && len(args) == 1 {
			return errStdinWithFile
		}

		var (
			packages []models.WorkoutPackage
			err      error
		)
		switch {
		case runFromStdin:
			packages, err = utils.ParsePackagesText(cmd.InOrStdin())
		case len(args) == 1:
			packages, err = utils.ParsePackagesFromTOML(args[0])
		default:
			packages = utils.DefaultPackages()
		}
		if err != nil {
			return fmt.Errorf("failed to read packages: %w", err)
		}

		var save saveFunc
		if runSave {
			st, err := openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			save = func(msg training.InfoMessage) error {
				id, err := st.SaveWorkout(msg)
				if err != nil {
					return err
				}
				logger.Logger.Debug("workout saved", zap.String("id", id), zap.String("workout_type", msg.TrainingType))
				return nil
			}
		}

		return runPackages(cmd.OutOrStdout(), cmd.ErrOrStderr(), packages, save)
	},
}

type saveFunc func(training.InfoMessage) error

var (
	errPackagesFailed = errors.New("some packages failed")
	errStdinWithFile  = errors.New("--stdin cannot be combined with a package file")
)

// runPackages prints one summary line per package. A failing package is
// reported on errOut and the remaining packages are still processed.
func runPackages(out, errOut io.Writer, packages []models.WorkoutPackage, save saveFunc) error {
	red := color.New(color.FgRed).SprintFunc()

	failed := 0
	for i, p := range packages {
		msg, err := processPackage(p, save)
		if err != nil {
			failed++
			logger.Logger.Warn("package failed", zap.Int("index", i+1), zap.String("workout_type", p.Type), zap.Error(err))
			fmt.Fprintf(errOut, "%s package %d (%s): %v\n", red("✗"), i+1, p.Type, err)
			continue
		}
		fmt.Fprintln(out, msg.Message())
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errPackagesFailed, failed, len(packages))
	}
	return nil
}

func processPackage(p models.WorkoutPackage, save saveFunc) (training.InfoMessage, error) {
	t, err := training.ReadPackage(p.Type, p.Data)
	if err != nil {
		return training.InfoMessage{}, err
	}

	msg := training.ShowTrainingInfo(t)
	logger.Logger.Debug("workout computed",
		zap.String("workout_type", msg.TrainingType),
		zap.Float64("distance", msg.Distance),
		zap.Float64("calories", msg.Calories),
	)

	if save != nil {
		if err := save(msg); err != nil {
			return training.InfoMessage{}, err
		}
	}
	return msg, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runFromStdin, "stdin", false, "Read packages from stdin, one \"CODE v1 v2 ...\" per line")
	runCmd.Flags().BoolVarP(&runSave, "save", "s", false, "Store each summary in the history database")
}
