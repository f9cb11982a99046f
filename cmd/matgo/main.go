// Package main provides the MatGo command line tool.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/matgo-vision/matgo/imgcodec"
	"github.com/matgo-vision/matgo/imgproc"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("MatGo %s\n", version)
	case "info":
		err = info(os.Args[2:])
	case "convert":
		err = convert(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "matgo: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("MatGo - dense matrices and image processing for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version               Show version")
	fmt.Println("  info <file>           Show image dimensions and element type")
	fmt.Println("  convert <in> <out>    Re-encode an image, optionally resized")
	fmt.Println("")
	fmt.Println("convert options: [width height] appended after the output path")
}

func info(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("info expects exactly one file")
	}
	m, err := imgcodec.Load(args[0], imgcodec.LoadUnchanged)
	if err != nil {
		return err
	}
	defer m.Release()

	fmt.Printf("%s: %dx%d %s\n", args[0], m.Cols(), m.Rows(), m.ElemType())
	return nil
}

func convert(args []string) error {
	if len(args) != 2 && len(args) != 4 {
		return fmt.Errorf("convert expects <in> <out> [width height]")
	}
	m, err := imgcodec.Load(args[0], imgcodec.LoadUnchanged)
	if err != nil {
		return err
	}
	defer m.Release()

	if len(args) == 4 {
		w, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad width %q", args[2])
		}
		h, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("bad height %q", args[3])
		}
		if err := imgproc.ResizeInPlace(m, w, h, imgproc.InterLinear); err != nil {
			return err
		}
	}
	return imgcodec.Save(args[1], m, nil)
}
