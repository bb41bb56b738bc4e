package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Omar0902/SDOM/internal/tables"
)

func main() {
	dir := flag.String("dir", "", "Directory to write the new case's table set into")
	hours := flag.Int("hours", 8760, "Number of hours to generate flat placeholder series for")
	flag.Parse()

	if *dir == "" {
		fmt.Println("usage: scaffold-case --dir <case-directory> [--hours 8760]")
		return
	}

	if err := tables.ScaffoldCase(*dir, *hours); err != nil {
		log.Fatalf("scaffold-case: %v", err)
	}
	fmt.Printf("Wrote a %d-hour placeholder case to %s\n", *hours, *dir)
}
