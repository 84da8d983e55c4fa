package main

import (
	"flag"
	"os"

	"github.com/gentam/spinor"
)

func writeCommand(args []string) {
	fs := flag.NewFlagSet("write", flag.ExitOnError)
	var (
		filename   string
		addr       uint64
		eraseFirst bool
	)
	fs.StringVar(&filename, "f", "", "input file")
	fs.Uint64Var(&addr, "a", 0, "start address")
	fs.BoolVar(&eraseFirst, "e", false, "erase the target range first")
	fs.Parse(args)

	if filename == "" {
		fatalUsage("input file is required")
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		fatalf("failed to read file: %v", err)
	}

	d, err := spinor.NewDevice()
	if err != nil {
		fatalf("%v", err)
	}
	chip := d.Chip

	if err := spinor.PowerUp(chip); err != nil {
		fatalf("flash power up failed: %v", err)
	}
	defer spinor.PowerDown(chip)

	if eraseFirst {
		if err := spinor.EraseRange(chip, uint32(addr), uint32(len(data))); err != nil {
			fatalf("erase flash failed: %v", err)
		}
	}

	if err := chip.Driver().Write(chip, uint32(addr), data); err != nil {
		fatalf("write flash failed: %v", err)
	}
}
