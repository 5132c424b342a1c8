package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"numdraw/internal/bootstrap"
	drawinadapter "numdraw/internal/modules/draw/adapter/in"
	drawoutadapter "numdraw/internal/modules/draw/adapter/out"
	drawdto "numdraw/internal/modules/draw/dto"
	"numdraw/internal/platform/config"
	"numdraw/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "numdraw",
		Short:         "Draw unique numbers from 1 to 99",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return cmd.Help()
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newDrawCmd(&configPath))
	return root
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive number drawer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cmd.Context(), cfg)
		},
	}
}

type batchReport struct {
	ID      string `yaml:"id"`
	Numbers []int  `yaml:"numbers"`
}

type exportReport struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

type drawReport struct {
	Session   string        `yaml:"session"`
	Batches   []batchReport `yaml:"batches"`
	Drawn     int           `yaml:"drawn"`
	Remaining int           `yaml:"remaining"`
	Export    *exportReport `yaml:"export,omitempty"`
}

func newDrawCmd(configPath *string) *cobra.Command {
	var exportFile, exportStdout, exportClipboard bool
	var format, exportDir string

	cmd := &cobra.Command{
		Use:   "draw [count...]",
		Short: "Draw one batch per count within a single session",
		Long: "Each count is one draw of 1-5 numbers. All draws share one session, so no\n" +
			"number repeats across them. Without arguments a single number is drawn.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("--format must be text or yaml")
			}
			targets := exportTargets(exportFile, exportStdout, exportClipboard)
			if len(targets) > 1 {
				return fmt.Errorf("choose at most one of --export, --stdout, --clipboard")
			}
			if exportStdout && format == "yaml" {
				return fmt.Errorf("--stdout cannot be combined with --format yaml")
			}
			if len(args) == 0 {
				args = []string{"1"}
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if exportDir != "" {
				cfg.ExportDir = exportDir
			}
			log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			// with --stdout the CSV owns stdout; progress moves to stderr
			progress := out
			if exportStdout {
				progress = cmd.ErrOrStderr()
			}
			opts := bootstrap.Options{Stdout: out, Terminal: cmd.ErrOrStderr(), Log: log}
			if format == "text" {
				opts.Sink = drawoutadapter.NewWriterSink(progress, "")
			}
			ctx := cmd.Context()
			app, err := bootstrap.New(ctx, cfg, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			return runDraws(ctx, progress, app.DrawCLI, args, targets, format, log)
		},
	}
	cmd.Flags().BoolVar(&exportFile, "export", false, "export the session as a timestamped CSV file")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "print only the session CSV to stdout; progress goes to stderr")
	cmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "copy the session CSV to the terminal clipboard")
	cmd.Flags().StringVar(&exportDir, "dir", "", "export directory (overrides export_dir)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|yaml")
	return cmd
}

func exportTargets(file, stdout, clipboard bool) []string {
	var targets []string
	if file {
		targets = append(targets, drawdto.TargetFile)
	}
	if stdout {
		targets = append(targets, drawdto.TargetStdout)
	}
	if clipboard {
		targets = append(targets, drawdto.TargetClipboard)
	}
	return targets
}

func runDraws(ctx context.Context, w io.Writer, h drawinadapter.CLIHandler, counts, targets []string, format string, log logrus.FieldLogger) error {
	report := drawReport{}
	for _, count := range counts {
		if format == "text" {
			_, _ = fmt.Fprintf(w, "draw %s:\n", count)
		}
		out, err := h.Draw(ctx, count)
		if err != nil {
			return userError(err)
		}
		numbers := make([]int, len(out.Balls))
		for i, b := range out.Balls {
			numbers[i] = b.Value
		}
		report.Batches = append(report.Batches, batchReport{ID: out.BatchID, Numbers: numbers})
	}

	status, err := h.Status(ctx)
	if err != nil {
		return err
	}
	report.Session = status.SessionID
	report.Drawn = status.Drawn
	report.Remaining = status.Remaining

	if len(targets) == 1 {
		exported, err := h.Export(ctx, targets[0])
		if err != nil {
			return userError(err)
		}
		report.Export = &exportReport{Name: exported.Name, Location: exported.Location}
		log.WithField("location", exported.Location).Debug("exported")
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	default:
		_, _ = fmt.Fprintf(w, "drawn %d, remaining %d\n", report.Drawn, report.Remaining)
		if report.Export != nil && report.Export.Location != drawdto.TargetStdout {
			_, _ = fmt.Fprintf(w, "exported %s\n", report.Export.Location)
		}
	}
	return nil
}

type noticeError struct {
	msg string
	err error
}

func (e noticeError) Error() string { return e.msg }
func (e noticeError) Unwrap() error { return e.err }

// userError swaps validation errors for the message a user would see.
func userError(err error) error {
	notice, ok := drawinadapter.Feedback(err)
	if !ok {
		return err
	}
	return noticeError{msg: strings.TrimSuffix(notice.Message, "."), err: err}
}
