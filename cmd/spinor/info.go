package main

import (
	"flag"
	"fmt"

	"github.com/gentam/spinor"
)

func infoCommand(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
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

	flashID, err := spinor.ReadID(chip)
	if err != nil {
		fatalf("read flash ID failed: %v", err)
	}
	name := spinor.ChipName(flashID)
	if name == "" {
		name = "(unknown)"
	}
	fmt.Printf("id:     %06X\n", flashID)
	fmt.Printf("name:   %s\n", name)

	if size, err := chip.Driver().DetectSize(chip); err != nil {
		fmt.Printf("size:   %v\n", err)
	} else {
		fmt.Printf("size:   %d\n", size)
	}

	sr, err := chip.Host.ReadStatus(8)
	if err != nil {
		fatalf("read flash status register failed: %v", err)
	}
	fmt.Printf("status: %s\n", spinor.StatusRegister(sr))
}
