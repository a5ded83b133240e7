// Command disasm prints a listing of a program image.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The program image to disassemble")
	start := flag.String("start", "0x0000", "The address to start at")
	count := flag.Int("n", 32, "The number of instructions to print")
	flag.Parse()

	logger := log.New()
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading rom: %v", err)
		os.Exit(1)
	}
	address, err := strconv.ParseUint(*start, 0, 16)
	if err != nil {
		logger.Errorf("parsing start address: %v", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	disassemble(w, mmu.NewMMU(rom), uint16(address), *count)
}

// disassemble writes n lines of listing starting at address. Bytes
// that do not decode are emitted as data.
func disassemble(w io.Writer, b cpu.Bus, address uint16, n int) {
	for i := 0; i < n; i++ {
		ins, err := cpu.Disassemble(b, address)
		if err != nil {
			fmt.Fprintf(w, "%04X  %02X        DB $%02X\n", address, b.Read(address), b.Read(address))
			address++
			continue
		}

		var raw string
		for j := uint16(0); j < uint16(ins.Length); j++ {
			raw += fmt.Sprintf("%02X", b.Read(address+j))
		}
		fmt.Fprintf(w, "%04X  %-8s  %s\n", address, raw, cpu.Format(b, address, ins))
		address += uint16(ins.Length)
	}
}
