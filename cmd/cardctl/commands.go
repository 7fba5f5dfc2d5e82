package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	j "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/reoring/chatcard"
	echomw "github.com/reoring/chatcard/middleware/echo"
	"github.com/reoring/chatcard/webhook"
)

const envWebhookURL = "CARDCTL_WEBHOOK_URL"

type cliEnv struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	log            *slog.Logger
}

// flags returns a flag set carrying the shared -log-level flag.
func (e *cliEnv) flags(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	level := fs.String("log-level", "info", "log level: debug, info, warn or error")
	return fs, level
}

func (e *cliEnv) setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	e.log = slog.New(slog.NewJSONHandler(e.stderr, &slog.HandlerOptions{Level: lvl}))
}

// readInput reads the named file, or stdin for "" and "-".
func (e *cliEnv) readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(e.stdin)
	}
	return os.ReadFile(name)
}

func source(data []byte, yaml bool) chatcard.Source {
	if yaml {
		return chatcard.YAMLBytes(data)
	}
	return chatcard.JSONBytes(data)
}

// decodeDoc decodes a message, or a single card with asCard, and returns
// its canonical encoding.
func decodeDoc(data []byte, yaml, asCard bool, eopt chatcard.EncodeOpt) ([]byte, error) {
	if asCard {
		c, err := chatcard.Decode[chatcard.Card](source(data, yaml))
		if err != nil {
			return nil, err
		}
		return chatcard.Encode(c, eopt)
	}
	m, err := chatcard.Decode[chatcard.Message](source(data, yaml))
	if err != nil {
		return nil, err
	}
	return chatcard.Encode(m, eopt)
}

// printIssues writes one issue per line and reports whether err held any.
func (e *cliEnv) printIssues(err error) bool {
	iss, ok := chatcard.AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		path := it.Path
		if path == "" {
			path = "(root)"
		}
		fmt.Fprintf(e.stdout, "%s: %s: %s\n", path, it.Code, it.Message)
	}
	return true
}

func (e *cliEnv) validateCmd(args []string) int {
	fs, level := e.flags("validate")
	asCard := fs.Bool("card", false, "input is a single card instead of a message")
	yaml := fs.Bool("yaml", false, "input is YAML")
	schema := fs.Bool("jsonschema", false, "also check the input against the exported JSON Schema")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	e.setupLogger(*level)

	data, err := e.readInput(fs.Arg(0))
	if err != nil {
		e.log.Error("read input", "err", err)
		return 1
	}
	canonical, err := decodeDoc(data, *yaml, *asCard, chatcard.EncodeOpt{})
	if err != nil {
		if !e.printIssues(err) {
			e.log.Error("decode", "err", err)
		}
		return 1
	}
	if *schema && !*asCard {
		// The schema describes JSON, so YAML input is checked in its canonical form.
		if err := chatcard.CheckSchema(canonical); err != nil {
			fmt.Fprintf(e.stdout, "jsonschema: %v\n", err)
			return 1
		}
	}
	e.log.Debug("validated", "bytes", len(data))
	fmt.Fprintln(e.stdout, "ok")
	return 0
}

func (e *cliEnv) fmtCmd(args []string) int {
	fs, level := e.flags("fmt")
	asCard := fs.Bool("card", false, "input is a single card instead of a message")
	yaml := fs.Bool("yaml", false, "input is YAML")
	indent := fs.String("indent", "  ", "indent string; empty for compact output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	e.setupLogger(*level)

	data, err := e.readInput(fs.Arg(0))
	if err != nil {
		e.log.Error("read input", "err", err)
		return 1
	}
	out, err := decodeDoc(data, *yaml, *asCard, chatcard.EncodeOpt{Indent: *indent})
	if err != nil {
		if !e.printIssues(err) {
			e.log.Error("format", "err", err)
		}
		return 1
	}
	fmt.Fprintln(e.stdout, string(out))
	return 0
}

func (e *cliEnv) schemaCmd(args []string) int {
	fs, level := e.flags("schema")
	indent := fs.String("indent", "  ", "indent string; empty for compact output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	e.setupLogger(*level)

	var (
		out []byte
		err error
	)
	if *indent == "" {
		out, err = j.Marshal(chatcard.JSONSchema())
	} else {
		out, err = j.MarshalIndent(chatcard.JSONSchema(), "", *indent)
	}
	if err != nil {
		e.log.Error("marshal schema", "err", err)
		return 1
	}
	fmt.Fprintln(e.stdout, string(out))
	return 0
}

func (e *cliEnv) sendCmd(args []string) int {
	fs, level := e.flags("send")
	url := fs.String("url", "", "webhook URL (default $"+envWebhookURL+")")
	timeout := fs.Duration("timeout", webhook.DefaultTimeout, "request timeout")
	sample := fs.Bool("sample", false, "send the built-in sample message instead of reading input")
	yaml := fs.Bool("yaml", false, "input is YAML")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	e.setupLogger(*level)

	if *url == "" {
		*url = os.Getenv(envWebhookURL)
	}
	client, err := webhook.New(webhook.Config{URL: *url, Timeout: *timeout})
	if err != nil {
		e.log.Error("configure webhook", "err", err)
		return 2
	}

	msg := chatcard.SampleMessage()
	if !*sample {
		data, err := e.readInput(fs.Arg(0))
		if err != nil {
			e.log.Error("read input", "err", err)
			return 1
		}
		msg, err = chatcard.Decode[chatcard.Message](source(data, *yaml))
		if err != nil {
			if !e.printIssues(err) {
				e.log.Error("decode", "err", err)
			}
			return 1
		}
	}

	res, err := client.Send(context.Background(), msg)
	if err != nil {
		var se *webhook.StatusError
		if errors.As(err, &se) {
			e.log.Error("webhook rejected message", "status", se.StatusCode, "body", se.Body)
		} else {
			e.log.Error("send", "err", err)
		}
		return 1
	}
	e.log.Info("sent", "status", res.StatusCode, "cards", len(msg.CardsV2))
	return 0
}

func (e *cliEnv) serveCmd(args []string) int {
	fs, level := e.flags("serve")
	addr := fs.String("addr", ":8080", "listen address")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	e.setupLogger(*level)

	srv := newServer(e.log)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	e.log.Info("listening", "addr", *addr)
	if err := srv.Start(*addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.log.Error("serve", "err", err)
		return 1
	}
	return 0
}

// newServer builds the receiver: POST /messages validates a cardsV2 body
// and answers with the canonical encoding, GET /schema serves the JSON
// Schema.
func newServer(log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/schema", func(c echo.Context) error {
		return c.JSON(http.StatusOK, chatcard.JSONSchema())
	})
	e.POST("/messages", func(c echo.Context) error {
		msg, ok := echomw.GetMessage(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "message missing from context")
		}
		out, err := chatcard.Encode(msg)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		log.Info("received message", "cards", len(msg.CardsV2), "remote", c.RealIP())
		return c.JSONBlob(http.StatusOK, out)
	}, echomw.ValidateMessage())
	return e
}
