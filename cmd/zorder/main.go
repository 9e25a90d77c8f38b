package main

import (
	"flag"
	"fmt"
	"os"
)

const (
	cmdEncode  = "encode"
	cmdDecode  = "decode"
	cmdSupport = "support"
	cmdVersion = "version"
	cmdHelp    = "help"
)

var (
	width uint
	dims  uint
)

func init() {
	flag.UintVar(&width, "width", 32, "The bit width of each coordinate (8, 16, 32 or 64)")
	flag.UintVar(&dims, "dims", 2, "The number of dimensions interleaved into the index")
}

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) > 0 {
		switch args[0] {
		case cmdEncode:
			encode(args[1:])
		case cmdDecode:
			decode(args[1:])
		case cmdSupport:
			support()
		case cmdVersion:
			version()
		case cmdHelp:
			usage()
		}
	}

	usage()
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "zorder: "+format+"\n", args...)
	os.Exit(1)
}

func version() {
	fmt.Println("zorder version 1.0.0")
	os.Exit(0)
}
