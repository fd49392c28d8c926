package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chyp8 [command]",
	Short: "Chip-8 emulator using Go",
	Long:  "A Chip-8 emulator written from scratch that mimics the functionalities of a Chip-8, an interpretted language originally written for the COSMIC-VIP/ Telmac 8 bit systems.",
	Run:   Root,

	SilenceUsage: true,
}

func Root(cmd *cobra.Command, args []string) {
	fmt.Println("Enter command as `chyp8 start /path/ROM --refresh 60`")
	_ = cmd.Help()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chyp8.yaml)")
	flags.Bool("debug", false, "enable debug logging and instruction tracing")
	flags.Bool("quiet", false, "only log errors")
	flags.Bool("shift-verbatim", false, "8xy6 stores the whole pre-shift value in VF")
	flags.Bool("exclusive-range", false, "Fx55/Fx65 stop before register x")
	flags.Bool("clamp-sprites", false, "clamp off-screen sprite pixels to the last cell instead of wrapping")
	flags.Bool("address-fault", false, "halt on memory accesses past 0xFFF instead of wrapping")

	bindFlags(flags, map[string]string{
		keyDebug:          "debug",
		keyQuiet:          "quiet",
		keyShiftVerbatim:  "shift-verbatim",
		keyExclusiveRange: "exclusive-range",
		keyClampSprites:   "clamp-sprites",
		keyAddressFault:   "address-fault",
	})

	rootCmd.AddCommand(startCmd, runCmd, disasmCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".chyp8" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chyp8")
	}

	viper.SetEnvPrefix("chyp8")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
