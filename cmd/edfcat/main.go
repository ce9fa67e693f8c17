// cmd/edfcat/main.go
package main

import (
	"ecgqrs/internal/appshell"
	"ecgqrs/internal/edfapp"
)

func main() {
	appshell.Main(edfapp.RunContext)
}
