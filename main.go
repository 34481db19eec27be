package main

import "catalog-pipeline/cmd"

func main() {
	cmd.Execute()
}
