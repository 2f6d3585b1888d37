package main

import (
	"errors"
	"fmt"
	"image"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sbrx"
	"github.com/bodgit/sbrx/character"
	"github.com/bodgit/sbrx/rom"
	"github.com/urfave/cli/v2"
)

const defaultDB = "sbrx.db"

var logger = log.New(ioutil.Discard, "", 0)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func openROM(c *cli.Context) (*rom.File, error) {
	if c.String("rom") == "" {
		return nil, errors.New("no ROM specified")
	}
	return rom.Open(c.String("rom"))
}

func backupFile(c *cli.Context) string {
	if c.String("from") != "" {
		return c.String("from")
	}
	return c.String("rom") + ".xz"
}

func backup(c *cli.Context, f *rom.File) error {
	if c.Bool("no-backup") {
		return nil
	}

	b, err := os.Create(backupFile(c))
	if err != nil {
		return err
	}
	defer b.Close()

	if err := f.Backup(b); err != nil {
		return err
	}

	return b.Close()
}

func readImage(file string) (image.Image, error) {
	if _, err := sbrx.FormatFromPath(file); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return sbrx.Decode(f)
}

func main() {
	app := cli.NewApp()

	app.Name = "sbrx"
	app.Usage = "Sonic Battle sprite and palette editor"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "rom",
			EnvVars: []string{"SBRX_ROM"},
			Usage:   "path to ROM",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SBRX_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to workspace database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}
		return nil
	}

	noBackup := &cli.BoolFlag{
		Name:  "no-backup",
		Usage: "don't write a compressed backup of the ROM first",
	}

	reduce := &cli.BoolFlag{
		Name:  "reduce",
		Usage: "reduce the number of colors to fit the palette",
	}

	app.Commands = []*cli.Command{
		{
			Name:  "list",
			Usage: "List characters",
			Action: func(c *cli.Context) error {
				for _, d := range character.Characters {
					fmt.Printf("%-10s palette 0x%06X sprites 0x%06X animations %2d frames %3d\n", d.Name, d.PaletteOffset, d.SpriteOffset, len(d.Frames), d.TotalFrames())
				}
				return nil
			},
		},
		{
			Name:        "export",
			Usage:       "Export spritesheets from the ROM",
			Description: "Writes one image per character into DIRECTORY, optionally limited to the named characters",
			ArgsUsage:   "DIRECTORY [NAME...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: sbrx.FormatPNG,
					Usage: "image format, one of png, gif or bmp",
				},
				&cli.BoolFlag{
					Name:  "animations",
					Usage: "also write each animation as an animated GIF",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				ds := character.Characters
				if c.NArg() > 1 {
					ds = nil
					for _, name := range c.Args().Slice()[1:] {
						d, err := character.Find(name)
						if err != nil {
							return cli.NewExitError(fmt.Errorf("%s: %w", name, err), 1)
						}
						ds = append(ds, *d)
					}
				}

				f, err := openROM(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				e := sbrx.New(f, logger)
				if err := e.Export(c.Args().First(), strings.ToLower(c.String("format")), ds...); err != nil {
					return cli.NewExitError(err, 1)
				}

				if c.Bool("animations") {
					if err := e.ExportAnimations(c.Args().First(), ds...); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Import a spritesheet into the ROM",
			Description: "Decodes FILE and writes it to the ROM as the spritesheet and palette for the named character",
			ArgsUsage:   "NAME FILE",
			Flags:       []cli.Flag{reduce, noBackup},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				d, err := character.Find(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, err := readImage(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := openROM(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				e := sbrx.New(f, logger)
				if err := e.SetImage(d, m, c.Bool("reduce")); err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := backup(c, f); err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := e.Write(d); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "stage",
			Usage:       "Stage a spritesheet in the workspace database",
			Description: "Checks FILE decodes for the named character and stores it for a later apply",
			ArgsUsage:   "NAME FILE",
			Flags:       []cli.Flag{reduce},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				d, err := character.Find(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, err := readImage(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				db, err := sbrx.NewDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				e := sbrx.New(nil, logger)
				if err := e.Stage(db, d, m, c.Bool("reduce")); err != nil {
					return cli.NewExitError(fmt.Errorf("%s: %w", c.Args().Get(1), err), 1)
				}

				return nil
			},
		},
		{
			Name:      "unstage",
			Usage:     "Remove staged spritesheets from the workspace database",
			ArgsUsage: "NAME...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := sbrx.NewDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				for _, name := range c.Args().Slice() {
					d, err := character.Find(name)
					if err != nil {
						return cli.NewExitError(fmt.Errorf("%s: %w", name, err), 1)
					}

					if err := db.Remove(d.Name); err != nil {
						return cli.NewExitError(err, 1)
					}

					logger.Printf("Unstaged %s\n", d.Name)
				}

				return nil
			},
		},
		{
			Name:  "apply",
			Usage: "Write every staged spritesheet to the ROM",
			Flags: []cli.Flag{reduce, noBackup},
			Action: func(c *cli.Context) error {
				db, err := sbrx.NewDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				f, err := openROM(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := backup(c, f); err != nil {
					return cli.NewExitError(err, 1)
				}

				e := sbrx.New(f, logger)
				if err := e.Apply(db, c.Bool("reduce")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "palette",
			Usage:     "Print the palette for a character or one of the standalone palettes",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				d, err := character.FindPalette(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := openROM(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				e := sbrx.New(f, logger)
				if err := e.Palettes.Read(f, d); err != nil {
					return cli.NewExitError(err, 1)
				}

				p, err := e.Palettes.Load(d.Name)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				rgb := e.Palettes.ToRGB(p)
				for i, v := range p {
					fmt.Printf("%2d 0x%04X #%02X%02X%02X\n", i, v, rgb[i].R, rgb[i].G, rgb[i].B)
				}

				return nil
			},
		},
		{
			Name:        "restore",
			Usage:       "Restore the ROM from a backup",
			Description: "Replaces the ROM with the backup written by import or apply",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "from",
					Usage: "path to backup, defaults to the ROM path with .xz appended",
				},
			},
			Action: func(c *cli.Context) error {
				f, err := openROM(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				b, err := os.Open(backupFile(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer b.Close()

				if err := f.Restore(b); err != nil {
					return cli.NewExitError(err, 1)
				}

				logger.Printf("Restored \"%s\" from \"%s\"\n", c.String("rom"), b.Name())

				return f.Close()
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
