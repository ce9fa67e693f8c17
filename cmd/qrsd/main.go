// cmd/qrsd/main.go
package main

import (
	"ecgqrs/internal/app"
	"ecgqrs/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
