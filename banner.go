package main

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const bannerTitle = "Dekereke Pivot Tables - Development Server"

// displayURL derives the operator-facing URL from the configured host
// and the bound port. An all-interfaces bind is shown as localhost.
func displayURL(host string, port int) string {
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port))
}

func printBanner(w io.Writer, url, dir string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	color.New(color.Bold).Fprintln(w, bannerTitle)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Server running at: %s\n", color.CyanString(url))
	fmt.Fprintf(w, "Serving directory: %s\n", dir)
	fmt.Fprintln(w, "\nPress Ctrl+C to stop the server")
	fmt.Fprintln(w, rule)
}
