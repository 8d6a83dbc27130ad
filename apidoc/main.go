package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/autarch/gopagure/env"
	"github.com/autarch/gopagure/logger"
	"github.com/autarch/gopagure/routes"

	flags "github.com/jessevdk/go-flags"
)

type options struct {
	Output string `short:"o" long:"output" description:"Write the document to this file instead of stdout"`
	Pretty bool   `long:"pretty" description:"Indent the JSON output"`
	Host   string `long:"host" description:"Host the document points at (default: GOPAGURE_HOST or pagure.io)"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Pagure API swagger generator"

	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		os.Exit(code)
	}

	l, err := logger.New(logger.NewParams{IsProd: env.IsProd()})
	if err != nil {
		log.Fatal(err)
	}
	l = l.Named("apidoc")

	host := opts.Host
	if host == "" {
		host = env.Host()
	}

	sw := routes.Swagger(host)

	var doc []byte
	if opts.Pretty {
		doc, err = json.MarshalIndent(sw, "", "  ")
	} else {
		doc, err = json.Marshal(sw)
	}
	if err != nil {
		l.Fatalf("Could not marshal the swagger document: %s", err)
	}
	doc = append(doc, '\n')

	if opts.Output == "" {
		if _, err := os.Stdout.Write(doc); err != nil {
			l.Fatalf("Could not write to stdout: %s", err)
		}
		return
	}

	if err := os.WriteFile(opts.Output, doc, 0644); err != nil {
		l.Fatalf("Could not write %s: %s", opts.Output, err)
	}

	l.Infof("Wrote swagger document for %s to %s", host, opts.Output)
}
