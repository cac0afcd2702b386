// icns converts between Apple icon containers and iconset directories of
// PNG files, copying image bytes verbatim in both directions.
//
// Usage:
//
//	icns encode <dir.iconset>   write <dir>.icns to the working directory
//	icns decode <file.icns>     write <file>.iconset to the working directory
//	icns inspect <file.icns>    list container chunks on stdout
package main

import (
	"fmt"
	"os"

	"github.com/icnspack/icns"
)

func main() {
	args := os.Args[1:]
	if len(args) != 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "encode":
		err = runEncode(args[1])
	case "decode":
		err = runDecode(args[1])
	case "inspect":
		err = runInspect(args[1])
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s encode <dir.iconset> | decode <file.icns> | inspect <file.icns>\n", os.Args[0])
}

func runEncode(path string) error {
	_, err := icns.Pack(path, icns.EncodeWithWarnFunc(func(name string) {
		fmt.Fprintf(os.Stderr, "Warning: don't know icon type for %s, skipping\n", name)
	}))
	return err
}

func runDecode(path string) error {
	_, err := icns.Unpack(path)
	return err
}

func runInspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := icns.Inspect(f)
	if err != nil {
		return err
	}
	for _, c := range res.Chunks() {
		fmt.Printf("%s  %-22s %10d  %s\n", c.Tag, c.Filename, c.PayloadSize, c.Digest)
	}
	fmt.Printf("%d chunks, %d bytes total\n", res.ChunkCount(), res.TotalSize())
	return nil
}
