package cmd

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/beanboi7/chyp8/emu/cpu"
)

// viper keys, also the names used in the config file
const (
	keyRefresh        = "refresh"
	keyScale          = "scale"
	keySteps          = "steps"
	keySeed           = "seed"
	keyDebug          = "debug"
	keyQuiet          = "quiet"
	keyShiftVerbatim  = "quirks.shift_flag_verbatim"
	keyExclusiveRange = "quirks.exclusive_register_range"
	keyClampSprites   = "quirks.clamp_sprites"
	keyAddressFault   = "quirks.address_fault"
)

type settings struct {
	Refresh int
	Scale   float64
	Steps   int
	Seed    int64
	Debug   bool
	Quiet   bool

	Quirks        cpu.Quirks
	AddressPolicy cpu.AddressPolicy
}

func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(name)))
	}
}

func loadSettings(v *viper.Viper) settings {
	s := settings{
		Refresh: v.GetInt(keyRefresh),
		Scale:   v.GetFloat64(keyScale),
		Steps:   v.GetInt(keySteps),
		Seed:    v.GetInt64(keySeed),
		Debug:   v.GetBool(keyDebug),
		Quiet:   v.GetBool(keyQuiet),
		Quirks: cpu.Quirks{
			ShiftFlagVerbatim:      v.GetBool(keyShiftVerbatim),
			ExclusiveRegisterRange: v.GetBool(keyExclusiveRange),
			ClampSprites:           v.GetBool(keyClampSprites),
		},
	}
	if v.GetBool(keyAddressFault) {
		s.AddressPolicy = cpu.AddressFault
	}
	return s
}

// createLogger creates a logger with appropriate settings
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// options turns the settings into machine options. Instruction tracing is
// only wired up in debug mode.
func (s settings) options(logger *log.Logger) []cpu.Option {
	opts := []cpu.Option{
		cpu.WithQuirks(s.Quirks),
		cpu.WithAddressPolicy(s.AddressPolicy),
		cpu.WithRandom(cpu.NewRandom(s.Seed)),
	}
	if s.Debug {
		opts = append(opts, cpu.WithLogger(logger))
	}
	return opts
}

// newMachine loads the ROM and builds the machine from the current settings.
func newMachine(romPath string, s settings, logger *log.Logger) (*cpu.EMU, error) {
	emu, err := cpu.NewEMU(romPath, s.options(logger)...)
	if err != nil {
		return nil, err
	}

	logger.Info("ROM loaded",
		log.String("path", romPath),
		log.String("address_policy", s.AddressPolicy.String()))
	return emu, nil
}
