package main

import "github.com/habitacasa/habitacasa_backend/cmd"

func main() {
	cmd.Execute()
}
