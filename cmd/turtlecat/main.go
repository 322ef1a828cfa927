// Command turtlecat decodes RDF-1.1 Turtle (optionally RDF-star) from a file
// or stdin and writes each statement to stdout, one per line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tokovach/rdf4j/rdf"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:                   "turtlecat",
		Usage:                  "decode RDF-1.1 Turtle and print its statements",
		Version:                version,
		UseShortOptionHandling: true,
		ArgsUsage:              "[file.ttl]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "star",
				Usage: "accept \"<< s p o >>\" RDF-star triple terms",
			},
			&cli.BoolFlag{
				Name:  "sparql-directives",
				Usage: "accept case-insensitive SPARQL-style PREFIX/BASE",
			},
			&cli.BoolFlag{
				Name:  "preserve-bnode-ids",
				Usage: "keep source blank node labels verbatim",
			},
			&cli.BoolFlag{
				Name:  "safe-limits",
				Usage: "apply safety limits suitable for untrusted input",
			},
			&cli.BoolFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "print only namespace, comment and statement counts",
			},
			&cli.StringFlag{
				Name:  "base",
				Usage: "base IRI for resolving relative IRIs",
			},
		},
		Action: catAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "turtlecat: %v\n", err)
		os.Exit(1)
	}
}

func catAction(ctx context.Context, cmd *cli.Command) error {
	in := os.Stdin
	if cmd.NArg() > 0 {
		f, err := os.Open(cmd.Args().First())
		if err != nil {
			return fmt.Errorf("opening %s: %w", cmd.Args().First(), err)
		}
		defer f.Close()
		in = f
	}

	opts := []rdf.Option{
		rdf.OptContext(ctx),
		rdf.OptSetting(rdf.AcceptTurtleStar, cmd.Bool("star")),
		rdf.OptSetting(rdf.CaseInsensitiveDirectives, cmd.Bool("sparql-directives")),
		rdf.OptSetting(rdf.PreserveBNodeIDs, cmd.Bool("preserve-bnode-ids")),
		rdf.OptOnWarning(func(pe *rdf.ParseError) {
			fmt.Fprintf(os.Stderr, "warning: line %d: %v\n", pe.Line, pe.Err)
		}),
	}
	if cmd.Bool("safe-limits") {
		opts = append(opts, rdf.OptSafeLimits())
	}

	namespaces := 0
	comments := 0
	statements := 0
	count := cmd.Bool("count")

	handler := rdf.HandlerFuncs{
		OnNamespace: func(prefix, iri string) error {
			namespaces++
			if !count {
				fmt.Printf("@prefix %s: <%s> .\n", prefix, iri)
			}
			return nil
		},
		OnComment: func(text string) error {
			comments++
			return nil
		},
		OnStatement: func(stmt rdf.Statement) error {
			statements++
			if !count {
				fmt.Println(stmt.String())
			}
			return nil
		},
	}

	if base := cmd.String("base"); base != "" {
		opts = append(opts, rdf.OptBaseURI(base))
	}

	if err := rdf.Decode(in, handler, opts...); err != nil {
		return err
	}

	if count {
		fmt.Printf("namespaces: %d\ncomments: %d\nstatements: %d\n", namespaces, comments, statements)
	}
	return nil
}
