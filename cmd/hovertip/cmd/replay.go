package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-drift/hovertip/cmd/hovertip/internal/script"
	"github.com/go-drift/hovertip/pkg/config"
	"github.com/go-drift/hovertip/pkg/errors"
	"github.com/go-drift/hovertip/pkg/schedule"
	"github.com/go-drift/hovertip/pkg/tooltip"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a pointer trace and print the tooltip timeline",
		Long: `Replay a scripted pointer trace against a scripted plot surface.

The trace runs in virtual time, so the output is exact and instant. Timing
comes from hovertip.yaml next to the script (or --config), then from the
script's own delays block.

Flags:
  --config FILE   Read tooltip configuration from FILE
  --verbose       Log hover transitions to stderr
  --quiet         Drop hit-test and scheduling errors instead of logging them`,
		Usage: "hovertip replay [--config FILE] [--verbose|--quiet] <script.yaml>",
		Run:   runReplay,
	})
}

type replayOptions struct {
	scriptPath string
	configPath string
	verbose    bool
	quiet      bool
}

func parseReplayArgs(args []string) (replayOptions, error) {
	var opts replayOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--verbose":
			opts.verbose = true
		case arg == "--quiet":
			opts.quiet = true
		case arg == "--config":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--config requires a file path")
			}
			opts.configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %q", arg)
		default:
			if opts.scriptPath != "" {
				return opts, fmt.Errorf("only one script may be replayed at a time")
			}
			opts.scriptPath = arg
		}
	}
	if opts.verbose && opts.quiet {
		return opts, fmt.Errorf("--verbose and --quiet cannot be combined")
	}
	if opts.scriptPath == "" {
		return opts, fmt.Errorf("script is required\n\nUsage: hovertip replay [--config FILE] [--verbose|--quiet] <script.yaml>")
	}
	return opts, nil
}

func runReplay(args []string, out io.Writer) error {
	opts, err := parseReplayArgs(args)
	if err != nil {
		return err
	}

	s, err := script.Load(opts.scriptPath)
	if err != nil {
		return err
	}

	var cfg *config.Config
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadOptional(filepath.Dir(opts.scriptPath))
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var logger *slog.Logger
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: true})
		defer errors.SetHandler(nil)
	}
	if opts.quiet {
		defer errors.Mute(errors.KindHitTest, errors.KindSchedule)()
	}

	return replay(s, cfg, logger, out)
}

// replay drives the controller through the script in virtual time.
func replay(s *script.Script, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	sched := schedule.NewManual()
	start := sched.Now()
	view := &timelineView{out: out, clock: sched, start: start}

	ctl := tooltip.NewController(s.Scene(), view, sched, tooltip.Options{
		Delays:    cfg.Delays.Override(s.Delays),
		Tolerance: cfg.Tolerance,
		Logger:    logger,
	})

	for _, e := range s.Events {
		sched.Set(start.Add(e.At))
		switch e.Kind {
		case script.KindEnter:
			view.log("enter %s", formatPoint(e))
			ctl.OnPointerEnter(e.Point())
		case script.KindMove:
			view.log("move  %s", formatPoint(e))
			ctl.OnPointerMove(e.Point())
		case script.KindLeave:
			view.log("leave")
			ctl.OnPointerLeave()
		}
	}
	settle(sched, start.Add(s.Duration()), s.Tail > 0)
	view.log("end   state=%s hover=%s", ctl.State(), ctl.Current())
	return view.err
}

// settle runs the clock to end, or until no timer is left when bounded is
// false.
func settle(sched *schedule.Manual, end time.Time, bounded bool) {
	if bounded {
		sched.Set(end)
		return
	}
	sched.Set(end)
	for {
		next, ok := sched.NextDeadline()
		if !ok {
			return
		}
		sched.Set(next)
	}
}

func formatPoint(e script.Event) string {
	return fmt.Sprintf("(%g, %g)", e.X, e.Y)
}

// timelineView prints every visibility change with its virtual timestamp.
type timelineView struct {
	out   io.Writer
	clock schedule.Clock
	start time.Time
	text  string
	err   error
}

func (v *timelineView) SetText(text string) { v.text = text }

func (v *timelineView) SetVisible(visible bool) {
	if visible {
		v.log("show  %q", v.text)
		return
	}
	v.log("hide")
}

func (v *timelineView) log(format string, args ...any) {
	if v.err != nil {
		return
	}
	at := v.clock.Now().Sub(v.start)
	_, v.err = fmt.Fprintf(v.out, "%8s  %s\n", at, fmt.Sprintf(format, args...))
}
