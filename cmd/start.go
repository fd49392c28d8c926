package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/screen"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// chyp8 start 'path/to/ROM' -r 69
func Start(cmd *cobra.Command, args []string) error {
	s := loadSettings(viper.GetViper())
	logger := createLogger(s.Debug, s.Quiet)

	emu, err := newMachine(args[0], s, logger)
	if err != nil {
		return fmt.Errorf("starting the Emulator: %w", err)
	}

	var runErr error
	pixelgl.Run(func() {
		runErr = runWindow(emu, s, logger)
	})
	return runErr
}

// runWindow advances the machine at the refresh rate until the window is
// closed or the machine faults. The window is synced to the display, so every
// frame runs all steps that came due since the last one and draws once.
func runWindow(emu *cpu.EMU, s settings, logger *log.Logger) error {
	win, err := screen.NewWindow("Chyp8", s.Scale)
	if err != nil {
		return err
	}
	defer win.Destroy()

	p := newPacer(s.Refresh)
	last := time.Now()

	for !win.QuitRequested() {
		now := time.Now()
		elapsed := now.Sub(last)
		last = now

		if err := win.PollKeys(emu); err != nil {
			return err
		}
		if _, err := stepFrame(emu, p, elapsed); err != nil {
			logger.Error("Emulation halted",
				log.String("pc", fmt.Sprintf("0x%03X", emu.PC())),
				log.Err(err))
			return err
		}
		win.Draw(emu.Framebuffer())
	}
	return nil
}

// stepFrame runs the steps that came due during elapsed.
func stepFrame(m stepper, p *pacer, elapsed time.Duration) (int, error) {
	return runSteps(context.Background(), m, p.due(elapsed))
}

// maxBacklog bounds how much unprocessed time a pacer keeps, so a stalled
// window does not burst through thousands of steps afterwards.
const maxBacklog = time.Second / 4

// pacer converts wall clock time into a number of steps at a fixed rate.
// Time left over from a frame carries over to the next one.
type pacer struct {
	interval time.Duration
	pending  time.Duration
}

func newPacer(refresh int) *pacer {
	return &pacer{interval: tickInterval(refresh)}
}

// due adds elapsed to the pending time and returns the steps it covers.
func (p *pacer) due(elapsed time.Duration) int {
	p.pending += elapsed
	if p.pending > maxBacklog {
		p.pending = maxBacklog
	}

	n := p.pending / p.interval
	p.pending -= n * p.interval
	return int(n)
}

func tickInterval(refresh int) time.Duration {
	if refresh <= 0 {
		refresh = defaultRefresh
	}
	return time.Second / time.Duration(refresh)
}

const (
	defaultRefresh = 60
	defaultScale   = 10
)

func init() {
	startCmd.Flags().IntP("refresh", "r", defaultRefresh, "Set the refresh rate in Hz")
	startCmd.Flags().Float64P("scale", "s", defaultScale, "Scale factor of the 64x32 display")

	bindFlags(startCmd.Flags(), map[string]string{
		keyRefresh: "refresh",
		keyScale:   "scale",
	})
}
