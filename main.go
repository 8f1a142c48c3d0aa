package main

import "github.com/syedwebdesign/intake_backend/cmd"

func main() {
	cmd.Execute()
}
