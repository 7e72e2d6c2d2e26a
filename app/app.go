package app

import (
	"fmt"
	"os"

	"github.com/fkie-cad/fspath/version"
	"github.com/sirupsen/logrus"
	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"
)

var onExit func()

func initAppAction(c *cli.Context) error {
	lvl, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	switch c.String("log-path") {
	case "-":
		logrus.SetOutput(os.Stdout)
	case "--":
		logrus.SetOutput(os.Stderr)
	default:
		logfile, err := os.OpenFile(c.String("log-path"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.Errorf("could not open logfile for writing, reason: %w", err)
		}
		logrus.SetOutput(logfile)
		logrus.StandardLogger().ExitFunc = func(code int) {
			if onExit != nil {
				onExit()
			}
			os.Exit(code)
		}
		onExit = func() {
			logfile.Close()
		}
	}
	logrus.WithField("arguments", c.Args().Slice()).Debug("Program started.")
	return nil
}

// expectArgs checks the number of arguments, a negative maxArgs means
// unlimited.
func expectArgs(c *cli.Context, minArgs, maxArgs int) error {
	if c.NArg() < minArgs {
		return errors.Newf("expected at least %d arguments, got %d", minArgs, c.NArg())
	}
	if maxArgs >= 0 && c.NArg() > maxArgs {
		return errors.Newf("expected at most %d arguments, got %d", maxArgs, c.NArg())
	}
	return nil
}

// MakeApp creates the cli.App with all commands.
func MakeApp() *cli.App {
	return &cli.App{
		Name:        "fspath",
		HelpName:    "fspath",
		Description: "Inspect and manipulate filesystem paths.",
		Version:     version.FSPathVersion.String(),
		Authors: []*cli.Author{
			{
				Name:  "Luca Corbatto",
				Email: "luca.corbatto@fkie.fraunhofer.de",
			},
		},
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "one of [trace, debug, info, warn, error, fatal, panic]",
				Value:   "panic",
			},
			&cli.StringFlag{
				Name:  "log-path",
				Usage: "path to the logfile, or \"-\" for stdout, or \"--\" for stderr",
				Value: "--",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Aliases:   []string{"stat"},
				Usage:     "shows metadata of paths",
				ArgsUsage: "<path> [paths...]",
				Action:    info,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "width",
						Aliases: []string{"w"},
						Usage:   "shorten paths to fit into this many columns, 0 disables shortening",
						EnvVars: []string{"COLUMNS"},
					},
				},
			},
			{
				Name:      "list",
				Aliases:   []string{"ls"},
				Usage:     "lists the entries of a directory",
				ArgsUsage: "[directory]",
				Action:    list,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "pattern",
						Aliases: []string{"p"},
						Usage:   "only list entries whose name matches the shell pattern, e.g. \"*.go\"",
					},
					&cli.BoolFlag{
						Name:    "dirs",
						Aliases: []string{"d"},
						Usage:   "only list directories",
					},
					&cli.BoolFlag{
						Name:    "files",
						Aliases: []string{"f"},
						Usage:   "only list regular files",
					},
					&cli.BoolFlag{
						Name:  "long",
						Usage: "also show mode, size, owner and modification time",
					},
				},
			},
			{
				Name:      "glob",
				Usage:     "lists paths matching a pattern relative to a directory",
				ArgsUsage: "<directory> <pattern>",
				Action:    glob,
			},
			{
				Name:      "tree",
				Usage:     "recursively lists a directory",
				ArgsUsage: "[directory]",
				Action:    tree,
			},
			{
				Name:      "owner",
				Usage:     "shows the owners of paths",
				ArgsUsage: "<path> [paths...]",
				Action:    owner,
			},
			{
				Name:      "expand",
				Usage:     "expands variables and ~ in paths and normalizes them",
				ArgsUsage: "<path> [paths...]",
				Action:    expand,
			},
			{
				Name:      "realpath",
				Usage:     "resolves symbolic links",
				ArgsUsage: "<path> [paths...]",
				Action:    realpath,
			},
			{
				Name:      "parts",
				Usage:     "shows parent, name and extension of paths",
				ArgsUsage: "<path> [paths...]",
				Action:    parts,
			},
			{
				Name:      "touch",
				Usage:     "creates files or updates their timestamps",
				ArgsUsage: "<path> [paths...]",
				Action:    touch,
			},
			{
				Name:      "mkdir",
				Usage:     "creates directories",
				ArgsUsage: "<path> [paths...]",
				Action:    mkdir,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "parents",
						Aliases: []string{"p"},
						Usage:   "create missing parents",
					},
				},
			},
			{
				Name:      "rm",
				Usage:     "removes files",
				ArgsUsage: "<path> [paths...]",
				Action:    remove,
			},
			{
				Name:      "rmdir",
				Usage:     "removes empty directories",
				ArgsUsage: "<path> [paths...]",
				Action:    removeDir,
			},
			{
				Name:      "mv",
				Usage:     "renames a path",
				ArgsUsage: "<old> <new>",
				Action:    rename,
			},
			{
				Name:      "chmod",
				Usage:     "changes permissions",
				ArgsUsage: "<octal mode> <path> [paths...]",
				Action:    chmod,
			},
			{
				Name:      "chown",
				Usage:     "changes numeric owner and group, does nothing on platforms without ownership",
				ArgsUsage: "<path> [paths...]",
				Action:    chown,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "uid",
						Usage: "new user id, -1 keeps the current one",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "gid",
						Usage: "new group id, -1 keeps the current one",
						Value: -1,
					},
				},
			},
			{
				Name:      "within",
				Usage:     "runs a command with the working directory set to a directory",
				ArgsUsage: "<directory> <command> [args...]",
				Action:    within,
			},
		},
	}
}

func RunApp(args []string) {
	err := MakeApp().Run(args)
	if err != nil {
		fmt.Println(err)
		logrus.Error(err)
		logrus.Fatal("Aborting.")
	}
	if onExit != nil {
		onExit()
	}
}
