package main

import (
	"os"
)

const usageFmt = `
zorder converts between N-dimensional coordinates and Morton (Z-order curve) indexes.

Usage:

    zorder [options...] <command> [parameters ...]

Commands:

    encode    Interleaves the given coordinates into a Morton index

              zorder [options...] encode <coordinate> [coordinate ...]

    decode    Splits a Morton index back into its coordinates

              zorder [options...] decode <index>

              Indexes wider than 64 bits are given in hexadecimal.

    support   Reports whether this CPU supports the hardware-accelerated codecs

    version   Displays the version of this program
    help      Displays this information

Options:

    --width=<bits>   The bit width of each coordinate: 8, 16, 32 or 64 (default 32)
    --dims=<n>       The number of dimensions interleaved into the index (default 2)
`

func usage() {
	_, _ = os.Stdout.Write([]byte(usageFmt))
	os.Exit(0)
}
