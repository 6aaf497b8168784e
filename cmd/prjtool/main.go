/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/contamprj/cmd/prjtool/cmd"
	"github.com/ssargent/contamprj/pkg/di"
)

func main() {
	container := di.NewContainer()
	cmd.SetContainer(container)

	cmd.Execute()
}
