// Package main provides the alink-tensor CLI for inspecting and
// transforming serialized tensor strings.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RockySteveJobs/Alink/tensor"
)

const version = "v0.1.0"

// readInput returns the tensor string from args, or from stdin when no
// argument is given (one tensor per invocation).
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [TENSOR]",
		Short: "Parse a tensor string and describe its layout and shape",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args)
			if err != nil {
				return err
			}
			t, err := tensor.Parse(in)
			if err != nil {
				return err
			}
			switch t := t.(type) {
			case *tensor.Dense:
				fmt.Printf("layout:   dense\n")
				fmt.Printf("rank:     %d\n", t.Rank())
				fmt.Printf("shape:    %s\n", t.Shape())
				fmt.Printf("elements: %d\n", len(t.Data()))
			case *tensor.Sparse:
				fmt.Printf("layout:   sparse\n")
				fmt.Printf("rank:     %d\n", t.Rank())
				fmt.Printf("shape:    %s\n", t.Shape())
				fmt.Printf("nnz:      %d\n", t.NNZ())
			}
			return nil
		},
	}
}

func newDenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dense [TENSOR]",
		Short: "Convert a tensor string to dense layout and re-serialize it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args)
			if err != nil {
				return err
			}
			t, err := tensor.Parse(in)
			if err != nil {
				return err
			}
			d, err := t.ToDense()
			if err != nil {
				return err
			}
			fmt.Println(d.String())
			return nil
		},
	}
}

func newReshapeCmd() *cobra.Command {
	var shapeFlag string
	cmd := &cobra.Command{
		Use:   "reshape [TENSOR]",
		Short: "Reshape a tensor string and re-serialize it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newShape, err := parseShapeFlag(shapeFlag)
			if err != nil {
				return err
			}
			in, err := readInput(args)
			if err != nil {
				return err
			}
			t, err := tensor.Parse(in)
			if err != nil {
				return err
			}
			out, err := tensor.Reshape(t, newShape)
			if err != nil {
				return err
			}
			fmt.Println(out.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&shapeFlag, "shape", "", "target shape, e.g. 2,3 (-1 for an unknown axis)")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

// NewCLI builds the alink-tensor command tree.
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "alink-tensor",
		Short:         "Inspect and transform serialized tensor strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Println("alink-tensor", version)
				return
			}
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	rootCmd.AddCommand(
		newInspectCmd(),
		newDenseCmd(),
		newReshapeCmd(),
	)
	return rootCmd
}

func parseShapeFlag(s string) (tensor.Shape, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty shape")
	}
	tokens := strings.Split(s, ",")
	dims := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("bad shape entry %q: %w", tok, err)
		}
		dims[i] = n
	}
	return tensor.ShapeOf(dims...), nil
}

func main() {
	if err := NewCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
