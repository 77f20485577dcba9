package cmd

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"v.io/x/lib/cmdline"
)

// printAnswers writes the requested part(s) of a; part 0 means both.
func printAnswers(w io.Writer, a answers, part int) error {
	for i, v := range a {
		if part != 0 && part != i+1 {
			continue
		}
		if _, err := fmt.Fprintf(w, "Part %d: %d\n", i+1, v); err != nil {
			return err
		}
	}
	return nil
}

func newCmdDay(d day) *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "day" + strconv.Itoa(d.num),
		Short:    d.short,
		ArgsName: "path",
	}
	part := cmd.Flags.Int("part", 0, "Puzzle part to print, 1 or 2; 0 prints both")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("%s takes one pathname argument, but got %v", cmd.Name, argv)
		}
		if *part < 0 || *part > 2 {
			return fmt.Errorf("-part must be 0, 1 or 2, but got %d", *part)
		}
		a, err := d.solve(vcontext.Background(), argv[0])
		if err != nil {
			return err
		}
		return printAnswers(env.Stdout, a, *part)
	})
	return cmd
}

func newCmdAll() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "all",
		Short: "Solve every day whose input is present and print a TSV table",
		Long: `
all looks for <dir>/day<N>.txt, then <dir>/day<N>.txt.gz, for N = 1..7, and
solves each day found.  Output columns are DAY, PART and ANSWER.`,
	}
	dir := cmd.Flags.String("dir", ".", "Directory holding the day<N>.txt inputs")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("all takes no arguments, but got %v", argv)
		}
		rows, err := solveAll(vcontext.Background(), *dir)
		if err != nil {
			return err
		}
		return writeTable(env.Stdout, rows)
	})
	return cmd
}

func newRoot() *cmdline.Command {
	children := make([]*cmdline.Command, 0, len(days)+1)
	for _, d := range days {
		children = append(children, newCmdDay(d))
	}
	children = append(children, newCmdAll())
	return &cmdline.Command{
		Name:     "aoc",
		Short:    "Advent of Code 2025 solvers",
		LookPath: false,
		Children: children,
	}
}

// Run is the aoc entry point.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept(regexp.MustCompile(`^log$`))
	cmdline.Main(newRoot())
}
