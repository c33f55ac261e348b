package main

import "github.com/rulegaze/rulegaze/cmd/rulegaze"

func main() {
	rulegaze.Execute()
}
