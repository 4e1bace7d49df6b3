package main

import "github.com/Joel-GJA/Github-Repo-analysis/cmd"

func main() {
	cmd.Execute()
}
