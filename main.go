package main

import "github.com/varalys/huelint/cmd/huelint"

func main() { huelint.Execute() }
