package main

import "github.com/dewatanation/admin-panel/internal/pkg/cli"

func main() {
	cli.Execute()
}
