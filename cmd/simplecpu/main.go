// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/simplecpu/processor"
	"github.com/ezrec/simplecpu/script"
	"github.com/ezrec/simplecpu/translate"
	"github.com/ezrec/simplecpu/value"
)

const DEFAULT_MEMORY = "#0001_0000"

// runOptions are the flags of the run command.
type runOptions struct {
	Memory  string // Capacity as hex text.
	Image   string // Memory image loaded before the script.
	Dump    string // Memory image written after the script.
	Verbose bool
}

func runScript(out io.Writer, opts runOptions, args []string) (err error) {
	capacity, err := value.Parse(opts.Memory)
	if err != nil {
		return
	}

	verbose := opts.Verbose
	if verbose {
		log.Printf("simplecpu: %v bytes of memory, messages in %v", uint32(capacity), translate.Language())
	}

	proc := processor.NewProcessor(capacity)
	proc.Verbose = verbose
	proc.Reset()

	if len(opts.Image) != 0 {
		err = loadImage(proc, opts.Image)
		if err != nil {
			return
		}
	}

	pg := script.NewPlayground(proc, out)
	pg.Verbose = verbose

	if len(args) == 0 {
		err = pg.Run()
	} else {
		var src []byte
		src, err = os.ReadFile(args[0])
		if err != nil {
			return
		}
		_, err = pg.Exec(args[0], src)
	}
	if err != nil {
		return
	}

	if len(opts.Dump) != 0 {
		err = dumpImage(proc, opts.Dump)
	}

	return
}

func loadImage(proc *processor.Processor, path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	err = proc.Memory.Unmarshal(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}
	return
}

func dumpImage(proc *processor.Processor, path string) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = proc.Memory.Marshal(ouf)
	if cerr := ouf.Close(); err == nil {
		err = cerr
	}
	return
}

// showParse prints each text in every hex style.
func showParse(out io.Writer, texts []string) (err error) {
	for _, text := range texts {
		rv, perr := value.Parse(text)
		if perr != nil {
			fmt.Fprintf(out, "%q: %v\n", text, perr)
			err = perr
			continue
		}

		fmt.Fprintf(out, "%q:", text)
		for _, flag := range value.HEX_FLAGS {
			fmt.Fprintf(out, " %v", rv.HexString(flag))
		}
		fmt.Fprintf(out, " %d\n", int32(rv.AsSigned()))
	}

	return
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "simplecpu",
		Short:         "Simple 32-bit CPU register and memory playground",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var opts runOptions

	runCmd := &cobra.Command{
		Use:   "run [script.star]",
		Short: "Run a playground script (the built-in session if none given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.OutOrStdout(), opts, args)
		},
	}
	runCmd.Flags().StringVar(&opts.Memory, "memory", DEFAULT_MEMORY, "Memory capacity, as hex text")
	runCmd.Flags().StringVarP(&opts.Image, "image", "i", "", "Memory image to load before running")
	runCmd.Flags().StringVarP(&opts.Dump, "dump", "o", "", "File to save the memory image to after running")
	runCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose mode")

	parseCmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Show hex text in every prefix style",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showParse(cmd.OutOrStdout(), args)
		},
	}

	rootCmd.AddCommand(runCmd, parseCmd)

	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		os.Exit(1)
	}
}
