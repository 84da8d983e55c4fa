package main

import (
	"flag"

	"github.com/gentam/spinor"
)

func eraseCommand(args []string) {
	fs := flag.NewFlagSet("erase", flag.ExitOnError)
	var (
		wholeChip bool
		addr      uint64
		block     bool
	)
	fs.BoolVar(&wholeChip, "chip", false, "bulk erase the entire chip")
	fs.Uint64Var(&addr, "a", 0, "address of the sector/block to erase")
	fs.BoolVar(&block, "block", false, "erase a 64KB block instead of a 4KB sector")
	fs.Parse(args)

	d, err := spinor.NewDevice()
	if err != nil {
		fatalf("%v", err)
	}
	chip := d.Chip

	if err := spinor.PowerUp(chip); err != nil {
		fatalf("flash power up failed: %v", err)
	}
	defer spinor.PowerDown(chip)

	switch {
	case wholeChip:
		err = chip.Driver().EraseChip(chip)
	case block:
		err = chip.Driver().EraseBlock(chip, uint32(addr))
	default:
		err = chip.Driver().EraseSector(chip, uint32(addr))
	}
	if err != nil {
		fatalf("erase flash failed: %v", err)
	}
}
