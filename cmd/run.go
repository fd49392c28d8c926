package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/screen"
)

var runCmd = &cobra.Command{
	Use:   "run `path/ROM`",
	Short: "run a ROM without a window and print the final screen",
	Args:  cobra.ExactArgs(1),
	RunE:  Run,
}

// chyp8 run 'path/to/ROM' --steps 5000
func Run(cmd *cobra.Command, args []string) error {
	s := loadSettings(viper.GetViper())
	logger := createLogger(s.Debug, s.Quiet)

	emu, err := newMachine(args[0], s, logger)
	if err != nil {
		return fmt.Errorf("starting the Emulator: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	executed, err := runSteps(ctx, emu, s.Steps)
	logger.Info("Run finished", log.Int("steps", executed))

	writeState(cmd.OutOrStdout(), emu)
	return err
}

type stepper interface {
	Step() error
}

// runSteps calls Step n times, stopping early on a fault or when ctx is done.
func runSteps(ctx context.Context, m stepper, n int) (int, error) {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return i, ctx.Err()
		default:
		}

		if err := m.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

func writeState(w io.Writer, emu *cpu.EMU) {
	fmt.Fprint(w, screen.Text(emu))
	fmt.Fprintf(w, "PC=0x%03X I=0x%03X SP=%d DT=%d ST=%d\n",
		emu.PC(), emu.I(), emu.SP(), emu.DelayTimer(), emu.SoundTimer())
	for i := 0; i < 16; i++ {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "V%X=%02X", i, emu.V(i))
	}
	fmt.Fprintln(w)
}

const defaultSteps = 1000

func init() {
	runCmd.Flags().IntP("steps", "n", defaultSteps, "number of instructions to execute")
	runCmd.Flags().Int64("seed", 0, "seed of the random number generator (0 picks one)")

	bindFlags(runCmd.Flags(), map[string]string{
		keySteps: "steps",
		keySeed:  "seed",
	})
}
