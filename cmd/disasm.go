package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/beanboi7/chyp8/emu/cpu"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "print a linear listing of the ROM's instructions",
	Args:  cobra.ExactArgs(1),
	RunE:  Disasm,
}

func Disasm(cmd *cobra.Command, args []string) error {
	rom, err := cpu.LoadROM(args[0])
	if err != nil {
		return err
	}
	return writeListing(cmd.OutOrStdout(), rom)
}

// writeListing decodes every word of the ROM as if it was code. Data shows
// up as NOP or as whatever instruction it happens to match.
func writeListing(w io.Writer, rom []byte) error {
	const base = 0x200

	for offset := 0; offset+1 < len(rom); offset += 2 {
		word := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		if _, err := fmt.Fprintf(w, "0x%03X  %04X  %s\n", base+offset, word, cpu.Decode(word)); err != nil {
			return err
		}
	}

	// odd trailing byte
	if len(rom)%2 == 1 {
		last := len(rom) - 1
		if _, err := fmt.Fprintf(w, "0x%03X  %02X    DB 0x%02X\n", base+last, rom[last], rom[last]); err != nil {
			return err
		}
	}
	return nil
}
