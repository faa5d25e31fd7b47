// Package main is the command-line entry point for the Ozen
// interpreter. It provides three modes of operation:
//  1. REPL mode (default): an interactive read-eval-print loop
//  2. File mode: execute an Ozen source file given as an argument
//  3. Server mode: host the same REPL over a TCP listener
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/pborman/getopt"

	"github.com/ozen-lang/ozen"
	"github.com/ozen-lang/ozen/repl"
)

const (
	version = "v1.0.0"
	author  = "the Ozen project"
	license = "MIT"
	prompt  = "ozen >>> "
)

var banner = `
   ____
  / __ \____  ___  ____
 / / / /_  / / _ \/ __ \
/ /_/ / / /_/  __/ / / /
\____/ /___/\___/_/ /_/
`

var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
	greenColor = color.New(color.FgGreen)
)

func main() {
	help := getopt.BoolLong("help", 'h', "display this help message")
	showVersion := getopt.BoolLong("version", 'V', "display version information")
	server := getopt.StringLong("server", 's', "", "start a REPL server on the given PORT")
	getopt.SetParameters("[file]")
	getopt.Parse()

	switch {
	case *help:
		printHelp()
	case *showVersion:
		printVersion()
	case *server != "":
		startServer(*server)
	case len(getopt.Args()) > 0:
		runFile(getopt.Args()[0])
	default:
		repl.New(banner, version, author, license, prompt).Start(os.Stdin, os.Stdout)
	}
}

func printHelp() {
	cyanColor.Println("Ozen - a small scripting language")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	fmt.Println("  ozen                   start the interactive REPL")
	fmt.Println("  ozen <file>            run an Ozen script")
	fmt.Println("  ozen --server <port>   start a REPL server on PORT")
	fmt.Println("  ozen --help            show this message")
	fmt.Println("  ozen --version         show version information")
}

func printVersion() {
	cyanColor.Printf("Ozen %s (%s), %s\n", version, license, author)
}

func runFile(filename string) {
	text, err := os.ReadFile(filename)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", filename, err)
		os.Exit(1)
	}

	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(os.Stderr, "internal error: %v\n", rec)
			os.Exit(1)
		}
	}()

	_, runErr := ozen.Run(filename, string(text), os.Stdout, os.Stdin)
	if runErr != nil {
		redColor.Fprintln(os.Stderr, runErr.Error())
		os.Exit(1)
	}
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	greenColor.Printf("Ozen REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go func(c net.Conn) {
			defer c.Close()
			repl.New(banner, version, author, license, prompt).Start(c, c)
		}(conn)
	}
}
