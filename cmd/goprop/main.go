// cmd/goprop/main.go
package main

import (
	"goprop/internal/app"
	"goprop/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
