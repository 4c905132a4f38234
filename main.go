package main

import "pactool/internal/pactool"

func main() {
	pactool.Main()
}
