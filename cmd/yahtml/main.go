// Command yahtml converts a YAML document tree into an HTML string.
//
// The input file must contain a YAML sequence of element declarations,
// for example:
//
//	- div#main.container:
//	    - h1: "Hello World"
//	    - p: This is a paragraph
//
// Usage:
//
//	yahtml [options] INPUT_FILE
package main

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yuusoft-org/yahtml"
)

// convertFile reads a YAML file, converts it and returns the HTML.
func convertFile(inputFileName string, maxDepth int, sugar *zap.SugaredLogger) (string, error) {
	data, err := os.ReadFile(inputFileName)
	if err != nil {
		return "", err
	}

	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return "", fmt.Errorf("parsing %s: %w", inputFileName, err)
	}

	var opts []yahtml.Option
	if maxDepth > 0 {
		opts = append(opts, yahtml.MaxDepth(maxDepth))
	}

	html, err := yahtml.Convert(root, opts...)
	if err != nil {
		return "", err
	}

	sugar.Debugw("converted", "input", inputFileName, "bytes", len(html))
	return html, nil
}

// processWatch checks once a second whether the input file has been modified,
// and reconverts it when it has.
func processWatch(inputFileName string, outputFileName string, maxDepth int, sugar *zap.SugaredLogger) error {

	var oldTimestamp time.Time

	for {
		info, err := os.Stat(inputFileName)
		if err != nil {
			return err
		}
		currentTimestamp := info.ModTime()

		if oldTimestamp.Before(currentTimestamp) {
			oldTimestamp = currentTimestamp
			fmt.Println("************Processing*************")
			html, err := convertFile(inputFileName, maxDepth, sugar)
			if err != nil {
				// Keep watching so the user can fix the file.
				sugar.Errorw("conversion failed", "input", inputFileName, "error", err)
			} else {
				if err := os.WriteFile(outputFileName, []byte(html), 0664); err != nil {
					return err
				}
				sugar.Infow("wrote output", "output", outputFileName)
			}
		}

		time.Sleep(1 * time.Second)
	}
}

func process(c *cli.Context) error {

	outputFileName := c.String("output")
	dryrun := c.Bool("dryrun")
	debug := c.Bool("debug")
	maxDepth := c.Int("max-depth")

	var z *zap.Logger
	var err error

	if debug {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}

	sugar := z.Sugar()
	defer sugar.Sync()

	if !c.Args().Present() {
		return cli.Exit("no input file provided", 1)
	}
	inputFileName := c.Args().First()

	if len(outputFileName) == 0 {
		ext := path.Ext(inputFileName)
		if len(ext) == 0 {
			outputFileName = inputFileName + ".html"
		} else {
			outputFileName = strings.TrimSuffix(inputFileName, ext) + ".html"
		}
	}

	if c.Bool("watch") {
		fmt.Printf("watching %v, writing %v\n", inputFileName, outputFileName)
		return processWatch(inputFileName, outputFileName, maxDepth, sugar)
	}

	html, err := convertFile(inputFileName, maxDepth, sugar)
	if err != nil {
		return err
	}

	if dryrun {
		fmt.Printf("dry run: processed %v without writing output\n", inputFileName)
		return nil
	}

	if err := os.WriteFile(outputFileName, []byte(html), 0664); err != nil {
		return err
	}
	fmt.Printf("processed %v and generated %v\n", inputFileName, outputFileName)

	return nil
}

func main() {

	app := &cli.App{
		Name:      "yahtml",
		Version:   "v0.1.0",
		Compiled:  time.Now(),
		Usage:     "convert a YAML document tree to HTML",
		UsageText: "yahtml [options] INPUT_FILE",
		Action:    process,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write html to `FILE` (default is input file name with extension .html)",
			},
			&cli.BoolFlag{
				Name:    "dryrun",
				Aliases: []string{"n"},
				Usage:   "do not generate output file, just process input file",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "watch the file for changes",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "maximum element nesting depth (0 uses the default)",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
