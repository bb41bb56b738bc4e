package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Omar0902/SDOM/internal/config"
	"github.com/Omar0902/SDOM/internal/export"
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/result"
	"github.com/Omar0902/SDOM/internal/solve"
	"github.com/Omar0902/SDOM/internal/tables"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "build":
		cmdBuild(os.Args[2:])
	case "solve":
		cmdSolve(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	case "scaffold":
		cmdScaffold(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli build --case <dir> --hours 8760 [--resilience]")
	fmt.Println("  cli solve --case <dir> --hours 8760 [--resilience] --solver solver.yaml")
	fmt.Println("  cli export --case <dir> --hours 8760 [--resilience] --solver solver.yaml --out results/ --name mycase")
	fmt.Println("  cli scaffold --dir <dir> --hours 8760")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - build parses and validates a case, then reports the model's problem size")
	fmt.Println("  - solve additionally runs the solver and reports the objective and cost breakdown")
	fmt.Println("  - export additionally writes the five OutputX_<name>.csv files to --out")
}

func cmdBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	caseDir := fs.String("case", "", "Case directory")
	hours := fs.Int("hours", 8760, "Number of hours in the horizon")
	resilience := fs.Bool("resilience", false, "Enable the resilience axis")
	_ = fs.Parse(args)

	requireFlag(*caseDir, "--case")

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	in, err := tables.LoadCase(*caseDir, *hours, *resilience, log)
	if err != nil {
		panic(err)
	}

	assembly, err := solve.BuildModel(in, *resilience)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Case %s: %d hours, %d variables, %d constraints\n", *caseDir, *hours, assembly.Model.NumCols(), assembly.Model.NumRows())
}

func cmdSolve(args []string) {
	in, outcome := runSolve(args, "solve")
	res := result.Extract(outcome)
	printSummary(in, res)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	outDir := fs.String("out", "results", "Output directory")
	caseName := fs.String("name", "case", "Case name used in output file names")
	caseDir := fs.String("case", "", "Case directory")
	hours := fs.Int("hours", 8760, "Number of hours in the horizon")
	resilience := fs.Bool("resilience", false, "Enable the resilience axis")
	solverFile := fs.String("solver", "", "Path to solver config YAML")
	_ = fs.Parse(args)

	requireFlag(*caseDir, "--case")
	requireFlag(*solverFile, "--solver")

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	in, err := tables.LoadCase(*caseDir, *hours, *resilience, log)
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(*solverFile)
	if err != nil {
		panic(err)
	}

	orch := solve.New(cfg.Solver, log)
	outcome, err := orch.Solve(in, *resilience)
	if err != nil {
		panic(err)
	}

	res := result.Extract(outcome)
	printSummary(in, res)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}
	if err := export.WriteAll(*outDir, *caseName, res); err != nil {
		panic(err)
	}
	fmt.Printf("\nWrote output CSVs to %s\n", *outDir)
}

func cmdScaffold(args []string) {
	fs := flag.NewFlagSet("scaffold", flag.ExitOnError)
	dir := fs.String("dir", "", "Directory to write the new case into")
	hours := fs.Int("hours", 8760, "Number of hours to generate placeholder series for")
	_ = fs.Parse(args)

	requireFlag(*dir, "--dir")

	if err := tables.ScaffoldCase(*dir, *hours); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote a %d-hour placeholder case to %s\n", *hours, *dir)
}

func runSolve(args []string, subcommand string) (*model.InputBundle, *solve.Outcome) {
	fs := flag.NewFlagSet(subcommand, flag.ExitOnError)
	caseDir := fs.String("case", "", "Case directory")
	hours := fs.Int("hours", 8760, "Number of hours in the horizon")
	resilience := fs.Bool("resilience", false, "Enable the resilience axis")
	solverFile := fs.String("solver", "", "Path to solver config YAML")
	_ = fs.Parse(args)

	requireFlag(*caseDir, "--case")
	requireFlag(*solverFile, "--solver")

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	in, err := tables.LoadCase(*caseDir, *hours, *resilience, log)
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(*solverFile)
	if err != nil {
		panic(err)
	}

	orch := solve.New(cfg.Solver, log)
	outcome, err := orch.Solve(in, *resilience)
	if err != nil {
		panic(err)
	}
	return in, outcome
}

func printSummary(in *model.InputBundle, res *result.Result) {
	fmt.Printf("Total cost: $%.2f\n", res.Scalars.TotalCost)
	fmt.Printf("Problem: %d rows, %d cols, %d binary\n", res.ProblemStats.Stats.NumRows, res.ProblemStats.Stats.NumCols, res.ProblemStats.Stats.NumBinary)
	fmt.Println("Cost breakdown:")
	for item, v := range res.CostByItem {
		fmt.Printf("  %-22s $%.2f\n", item, v)
	}
}

func requireFlag(v, name string) {
	if v == "" {
		fmt.Printf("%s is required\n", name)
		os.Exit(2)
	}
}
