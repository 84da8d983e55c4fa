// Package spinor is a generic chip driver for SPI NOR flash memory.
//
// It implements the lowest common subset of SPI flash commands that works
// across most chips: JEDEC identification, chip/sector/block erase, page
// program with automatic write splitting, mode-aware reads, and quad-enable
// status register configuration. The [Generic] driver can be used as-is for
// commodity chips, or embedded in a chip-specific driver that overrides
// individual operations.
//
// All hardware access goes through the [Host] transaction facade; a
// periph.io-backed implementation for FTDI FT2232H adapters is provided in
// [SPIHost] and [NewDevice].
//
// # References:
//
// SPI Flash
//   - [N25Q32]: N25Q032A Micron Serial NOR Flash Memory datasheet (could not find the official public URL)
//   - [W25Q128]: W25Q128JV-DTR Winbond Serial Flash Memory (https://www.winbond.com/resource-files/W25Q128JV_DTR%20RevD%2012232024%20Plus.pdf)
//   - [JESD216]: JEDEC Serial Flash Discoverable Parameters standard
//
// FTDI (https://ftdichip.com/document/application-notes/)
//   - [FTDI-AN_108]: Command Processor for MPSSE and MCU Host Bus Emulation Modes (https://ftdichip.com/wp-content/uploads/2020/08/AN_108_Command_Processor_for_MPSSE_and_MCU_Host_Bus_Emulation_Modes.pdf)
//   - [FTDI-AN_114]: Interfacing FT2232H Hi-Speed Devices To SPI Bus (https://ftdichip.com/wp-content/uploads/2020/08/AN_114_FTDI_Hi_Speed_USB_To_SPI_Example.pdf)
package spinor
