package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/snksoft/crc"

	"github.com/gentam/spinor"
)

func readCommand(args []string) {
	fs := flag.NewFlagSet("read", flag.ExitOnError)
	var (
		addr       uint64
		nread      int
		idOnly     bool
		statusOnly bool
		checksum   bool
		outFile    string
	)
	fs.Uint64Var(&addr, "a", 0, "start address")
	fs.IntVar(&nread, "n", 256, "number of bytes to read")
	fs.BoolVar(&idOnly, "id", false, "just print flash ID")
	fs.BoolVar(&statusOnly, "s", false, "just print flash status register")
	fs.BoolVar(&checksum, "crc", false, "print CRC-32 of the data read")
	fs.StringVar(&outFile, "o", "", "output file (default: hexdump)")
	fs.Parse(args)

	d, err := spinor.NewDevice()
	if err != nil {
		fatalf("%v", err)
	}
	chip := d.Chip
	chip.ReadMode = spinor.ReadModeSlow

	if err := spinor.PowerUp(chip); err != nil {
		fatalf("flash power up failed: %v", err)
	}
	defer spinor.PowerDown(chip)

	if statusOnly {
		sr, err := chip.Host.ReadStatus(8)
		if err != nil {
			fatalf("read flash status register failed: %v", err)
		}
		fmt.Println(spinor.StatusRegister(sr))
		return
	}

	flashID, err := spinor.ReadID(chip)
	if err != nil {
		fatalf("read flash ID failed: %v", err)
	}
	if idOnly {
		fmt.Printf("%06X\t%s\n", flashID, spinor.ChipName(flashID))
		return
	}
	if spinor.ChipName(flashID) == "" {
		fmt.Fprintf(os.Stderr, "unknown flash ID (%06X)\n", flashID)
	}

	data := make([]byte, nread)
	if err := chip.Driver().Read(chip, data, uint32(addr)); err != nil {
		fatalf("read flash failed: %v", err)
	}
	if checksum {
		fmt.Printf("crc32: %08X\n", crc.CalculateCRC(crc.CRC32, data))
	}
	if outFile == "" {
		fmt.Println(hex.Dump(data))
		return
	}
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		fmt.Fprintln(os.Stderr, "write file failed:", err)
	}
}
