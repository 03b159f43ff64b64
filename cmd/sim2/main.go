// Command sim2 inspects and manipulates similarity transforms stored
// as JSON files.
//
// Usage:
//
//	sim2 show <a.json>
//	sim2 compose <a.json> <b.json> -o <out.json>
//	sim2 invert <a.json> -o <out.json>
//	sim2 apply <a.json> < points.json
//
// apply reads a JSON array of [x, y] rows from stdin and writes the
// transformed rows to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/oliverbestmann/gm"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch cmd := os.Args[1]; cmd {
	case "show":
		err = runShow(os.Args[2:])
	case "compose":
		err = runCompose(os.Args[2:])
	case "invert":
		err = runInvert(os.Args[2:])
	case "apply":
		err = runApply(os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "sim2: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "sim2:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sim2 show|compose|invert|apply [args]")
}

func runShow(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show expects one file, got %d args", len(args))
	}

	tr, err := gm.Sim2FromJSON(args[0])
	if err != nil {
		return err
	}

	fmt.Println(tr)

	m := tr.Matrix()
	fmt.Printf("[ %10.6f %10.6f %10.6f ]\n", m.XAxis.X, m.XAxis.Y, m.XAxis.W)
	fmt.Printf("[ %10.6f %10.6f %10.6f ]\n", m.YAxis.X, m.YAxis.Y, m.YAxis.W)
	fmt.Printf("[ %10.6f %10.6f %10.6f ]\n", m.WAxis.X, m.WAxis.Y, m.WAxis.W)
	return nil
}

func runCompose(args []string) error {
	flags := flag.NewFlagSet("compose", flag.ExitOnError)
	out := flags.String("o", "", "output file")
	_ = flags.Parse(args)

	if flags.NArg() != 2 || *out == "" {
		return fmt.Errorf("compose expects two input files and -o")
	}

	aSb, err := gm.Sim2FromJSON(flags.Arg(0))
	if err != nil {
		return err
	}

	bSc, err := gm.Sim2FromJSON(flags.Arg(1))
	if err != nil {
		return err
	}

	return aSb.Compose(bSc).SaveAsJSON(*out)
}

func runInvert(args []string) error {
	flags := flag.NewFlagSet("invert", flag.ExitOnError)
	out := flags.String("o", "", "output file")
	_ = flags.Parse(args)

	if flags.NArg() != 1 || *out == "" {
		return fmt.Errorf("invert expects one input file and -o")
	}

	tr, err := gm.Sim2FromJSON(flags.Arg(0))
	if err != nil {
		return err
	}

	return tr.Inverse().SaveAsJSON(*out)
}

func runApply(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("apply expects one file, got %d args", len(args))
	}

	tr, err := gm.Sim2FromJSON(args[0])
	if err != nil {
		return err
	}

	var points [][]float64
	if err := json.NewDecoder(os.Stdin).Decode(&points); err != nil {
		return fmt.Errorf("read points: %w", err)
	}

	transformed, err := tr.TransformFrom(points)
	if err != nil {
		return err
	}

	return json.NewEncoder(os.Stdout).Encode(transformed)
}
