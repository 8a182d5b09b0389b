package main

import "github.com/alfassih/praxis_backend/cmd"

func main() {
	cmd.Execute()
}
