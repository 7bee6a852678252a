package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pfgo/pf-corpus-calculator/internal/calculation"
	"github.com/pfgo/pf-corpus-calculator/internal/config"
	"github.com/pfgo/pf-corpus-calculator/internal/output"
)

var (
	log = logrus.New()

	inputFile  string
	formatName string
	todayFlag  string
	verbose    bool
)

// logrusAdapter bridges the engine's Logger interface onto logrus.
type logrusAdapter struct{ l *logrus.Logger }

func (a logrusAdapter) Debugf(format string, args ...any) { a.l.Debugf(format, args...) }
func (a logrusAdapter) Infof(format string, args ...any)  { a.l.Infof(format, args...) }
func (a logrusAdapter) Warnf(format string, args ...any)  { a.l.Warnf(format, args...) }
func (a logrusAdapter) Errorf(format string, args ...any) { a.l.Errorf(format, args...) }

func main() {
	rootCmd := &cobra.Command{
		Use:   "pfcalc",
		Short: "Project a PF retirement corpus month by month",
		Long: `pfcalc projects the growth of a dual-sided (employee + employer) PF
account from the current month to retirement at 60, applying annual
increments, DA revisions, promotions, and the 2030/2040 pay commissions.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run the projection from a YAML input file",
		RunE:  runCalculate,
	}
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "pf_input.yaml", "projection input file")
	calculateCmd.Flags().StringVarP(&formatName, "format", "f", "console-lite", "output format")
	calculateCmd.Flags().StringVar(&todayFlag, "today", "", "override the reference date (YYYY-MM-DD)")

	exampleCmd := &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example input file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExample,
	}

	rootCmd.AddCommand(calculateCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func runCalculate(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return err
	}

	if todayFlag != "" {
		today, err := time.Parse("2006-01-02", todayFlag)
		if err != nil {
			return fmt.Errorf("invalid --today value %q: %w", todayFlag, err)
		}
		input.Today = today
	}
	if input.Today.IsZero() {
		input.Today = time.Now()
	}

	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logrusAdapter{log})

	projection, err := engine.Project(input)
	if err != nil {
		return err
	}
	log.Infof("projected %d months to retirement on %s",
		len(projection.Rows), projection.RetirementDate.Format("02-Jan-2006"))

	if !input.HighestPFPayAug2014.IsZero() {
		pension, err := calculation.CalculateHigherPension(
			input.DateOfBirth, input.DateOfJoining, input.HighestPFPayAug2014, projection.Rows)
		if err != nil {
			log.Warnf("higher pension not computed: %v", err)
		} else {
			log.Infof("EPFO higher monthly pension: %s (service %s years, bonus days %d)",
				output.FormatCurrency(pension.MonthlyPension), pension.TotalServiceYears, pension.BonusDaysAdded)
		}
	}

	name := output.NormalizeFormatName(formatName)
	if name == "console-lite" || name == "console" {
		f := output.GetFormatterByName(name)
		data, err := f.Format(projection)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	filename, err := output.GenerateReport(projection, formatName)
	if err != nil {
		return err
	}
	log.Infof("wrote %s", filename)
	return nil
}

func runExample(cmd *cobra.Command, args []string) error {
	filename := "pf_input.yaml"
	if len(args) == 1 {
		filename = args[0]
	}
	parser := config.NewInputParser()
	if err := config.SaveInput(parser.CreateExampleInput(), filename); err != nil {
		return err
	}
	log.Infof("wrote example input to %s", filename)
	return nil
}
