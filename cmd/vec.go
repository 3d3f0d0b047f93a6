package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/localvec/internal/config"
	"github.com/conneroisu/localvec/internal/errors"
	"github.com/conneroisu/localvec/pkg/hybridvec"
)

var vecCmd = &cobra.Command{
	Use:   "vec OP...",
	Short: "Run operations against a hybrid vector",
	Long: `Run a script of operations against a vector of strings and print the
state after each one: whether the elements are inline or spilled to the heap,
the length, and the contents.

Operations:
  push X       append X
  pop          remove the last element
  insert I X   insert X at index I
  remove I     remove the element at index I
  clear        remove every element

The inline capacity defaults to vec.inline_capacity from the configuration.
An out-of-range index stops the script with an error.

Examples:
  localvec vec --capacity 2 push a push b push c
  localvec vec push x insert 0 y remove 1 pop
  localvec vec -c 1 push a push b clear push c -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVec,
}

var (
	vecCapacity int
	vecOutput   *OutputFlags
)

func init() {
	rootCmd.AddCommand(vecCmd)

	vecCmd.Flags().IntVarP(&vecCapacity, "capacity", "c", 0, "Inline capacity (default from vec.inline_capacity)")
	vecOutput = AddOutputFlags(vecCmd.Flags())
}

type vecOp struct {
	name  string
	index int
	value string
}

func (op vecOp) String() string {
	switch op.name {
	case "push":
		return "push " + op.value
	case "insert":
		return fmt.Sprintf("insert %d %s", op.index, op.value)
	case "remove":
		return fmt.Sprintf("remove %d", op.index)
	default:
		return op.name
	}
}

type vecStep struct {
	Op       string   `json:"op" yaml:"op"`
	Result   string   `json:"result,omitempty" yaml:"result,omitempty"`
	Variant  string   `json:"variant" yaml:"variant"`
	Len      int      `json:"len" yaml:"len"`
	Contents []string `json:"contents" yaml:"contents"`
}

// parseVecScript turns the positional arguments into operations. The whole
// script is parsed before anything runs.
func parseVecScript(args []string) ([]vecOp, error) {
	var ops []vecOp
	for i := 0; i < len(args); i++ {
		op := vecOp{name: args[i]}

		need := 0
		switch op.name {
		case "push", "remove":
			need = 1
		case "insert":
			need = 2
		case "pop", "clear":
		default:
			return nil, fmt.Errorf("unknown operation %q (supported: push, pop, insert, remove, clear)", op.name)
		}
		if i+need >= len(args) {
			return nil, fmt.Errorf("%s needs %d argument(s)", op.name, need)
		}

		switch op.name {
		case "push":
			op.value = args[i+1]
		case "insert", "remove":
			index, err := strconv.Atoi(args[i+1])
			if err != nil {
				return nil, fmt.Errorf("%s: invalid index %q", op.name, args[i+1])
			}
			op.index = index
			if op.name == "insert" {
				op.value = args[i+2]
			}
		}

		i += need
		ops = append(ops, op)
	}
	return ops, nil
}

// applyVecOp runs op against v and returns the value it produced, if any.
func applyVecOp(v *hybridvec.Vec[string], op vecOp) (string, error) {
	switch op.name {
	case "push":
		v.Push(op.value)
	case "pop":
		value, ok := v.Pop()
		if !ok {
			return "(empty)", nil
		}
		return value, nil
	case "insert":
		return "", v.Insert(op.index, op.value)
	case "remove":
		return v.Remove(op.index)
	case "clear":
		v.Clear()
	default:
		return "", errors.NewInternalError(errors.ErrCodeInternalError, "unknown operation "+op.name, nil)
	}
	return "", nil
}

func variantName(v *hybridvec.Vec[string]) string {
	if v.Spilled() {
		return "spilled"
	}
	return "inline"
}

func runVec(cmd *cobra.Command, args []string) error {
	if err := vecOutput.Validate(); err != nil {
		return err
	}

	ops, err := parseVecScript(args)
	if err != nil {
		return err
	}

	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	capacity := cfg.Vec.InlineCapacity
	if cmd.Flags().Changed("capacity") {
		if vecCapacity < 0 || vecCapacity > config.MaxInlineCapacity {
			return fmt.Errorf("capacity %d is not in valid range 0-%d", vecCapacity, config.MaxInlineCapacity)
		}
		capacity = vecCapacity
	}

	ctx := commandContext(cmd)
	v := hybridvec.New[string](capacity)
	steps := hybridvec.New[vecStep](len(ops))

	var runErr error
	for _, op := range ops {
		wasSpilled := v.Spilled()
		result, err := applyVecOp(v, op)
		if err != nil {
			runErr = fmt.Errorf("%s: %w", op, err)
			break
		}
		if !wasSpilled && v.Spilled() {
			logger.Debug(ctx, "Vector spilled", "op", op.String(), "capacity", capacity, "len", v.Len())
		}
		steps.Push(vecStep{
			Op:       op.String(),
			Result:   result,
			Variant:  variantName(v),
			Len:      v.Len(),
			Contents: append([]string{}, v.AsSlice()...),
		})
	}

	out := cmd.OutOrStdout()
	if vecOutput.Structured() {
		if err := writeStructured(out, vecOutput.Format, steps.AsSlice()); err != nil {
			return err
		}
	} else if err := printVecSteps(out, capacity, steps); err != nil {
		return err
	}

	return runErr
}

func printVecSteps(out io.Writer, capacity int, steps *hybridvec.Vec[vecStep]) error {
	fmt.Fprintf(out, "inline capacity: %d\n", capacity)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OP\tRESULT\tVARIANT\tLEN\tCONTENTS")
	for _, step := range steps.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t[%s]\n",
			step.Op, step.Result, step.Variant, step.Len, strings.Join(step.Contents, " "))
	}
	return w.Flush()
}
