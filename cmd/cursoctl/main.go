package main

import "github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd"

func main() {
	cmd.Execute()
}
