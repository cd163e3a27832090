package main

import "github.com/wizinfantry/LLM-Text-RPG/cmd/rpg/root"

func main() {
	root.Execute()
}
