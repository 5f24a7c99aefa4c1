package main

import "github.com/georgemunganga/shopfront/cmd/shop/commands"

func main() {
	commands.Execute()
}
