package main

import (
	"fmt"
	"os"

	"github.com/kauppie/zorder"
)

// support reports whether the hardware-accelerated codecs are usable on the
// current CPU.
func support() {
	if zorder.HasHardwareSupport() {
		fmt.Println("bit-deposit/bit-extract instructions are supported")
	} else {
		fmt.Println("bit-deposit/bit-extract instructions are not supported")
	}

	os.Exit(0)
}
