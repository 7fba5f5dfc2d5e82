package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	env := &cliEnv{stdin: stdin, stdout: stdout, stderr: stderr}
	switch args[0] {
	case "validate":
		return env.validateCmd(args[1:])
	case "fmt":
		return env.fmtCmd(args[1:])
	case "schema":
		return env.schemaCmd(args[1:])
	case "send":
		return env.sendCmd(args[1:])
	case "serve":
		return env.serveCmd(args[1:])
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `cardctl: work with chat cardsV2 messages

Usage:
  cardctl validate [-card] [-yaml] [-jsonschema] [file]
  cardctl fmt [-card] [-yaml] [-indent "  "] [file]
  cardctl schema [-indent "  "]
  cardctl send [-url URL] [-timeout 10s] [-sample] [file]
  cardctl serve [-addr :8080]

Files default to standard input. send reads the webhook URL from
CARDCTL_WEBHOOK_URL when -url is empty.`)
}
