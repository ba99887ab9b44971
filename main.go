package main

import "github.com/helpmefast/fastvault/cmd/fastvault"

func main() {
	fastvault.Execute()
}
