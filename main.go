package main

import "github.com/vibeshield/vibeshield/cmd/vibeshield"

func main() {
	vibeshield.Execute()
}
