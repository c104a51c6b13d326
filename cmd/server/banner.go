package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	bannerRule     = color.New(color.FgCyan)
	bannerHeadline = color.New(color.FgGreen, color.Bold)
)

// printBanner writes the startup block. The mode line only checks that
// DEVCONTAINER is set, unlike the isDevContainer field.
func (app *application) printBanner(w io.Writer, port string) {
	rule := strings.Repeat("=", 50)

	mode := "Regular Environment"
	if app.Config.DevContainerSet {
		mode = "Dev Container"
	}

	bannerRule.Fprintln(w, rule)
	bannerHeadline.Fprintln(w, "🎉 Dev Container Server Started!")
	bannerRule.Fprintln(w, rule)
	io.WriteString(w, "📦 Running in: "+mode+"\n")
	io.WriteString(w, "🚀 Server listening on port: "+port+"\n")
	io.WriteString(w, "🔗 Local URL: http://localhost:"+port+"\n")
	io.WriteString(w, "📍 Tunnel: Connected via VS Code tunnel\n")
	bannerRule.Fprintln(w, rule)
}
