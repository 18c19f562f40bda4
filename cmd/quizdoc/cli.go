package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/quizdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Config  *Config
	Parser  quizdoc.QuizParser
	Reader  quizdoc.QuizReader
	Writers map[quizdoc.Format]quizdoc.QuizWriter
	Quizzes quizdoc.QuizService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `help:"Path to the configuration file" env:"QUIZDOC_CONFIG" default:"configurations.yaml"`
	Debug  bool   `help:"Log every parse, write, and library call"`

	Convert ConvertCmd `cmd:"" help:"Convert quiz result pages to study files"`
	List    ListCmd    `cmd:"" help:"List quizzes saved in the library"`
	Export  ExportCmd  `cmd:"" help:"Write a saved quiz to the output directory"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved quiz"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Formats    []string `short:"f" name:"format" default:"qz.txt" help:"Output format: txt, md, json, yaml, qz.txt (repeatable)"`
	RemoveHTML bool     `name:"remove-html" xor:"disposition" help:"Delete pages after converting them"`
	DontMove   bool     `name:"dont-move" xor:"disposition" help:"Leave pages in the input directory"`
	Cores      int      `short:"c" help:"Pages parsed in parallel (default: half the CPUs)"`
	Combine    bool     `help:"Write all pages as a single combined quiz"`
	FromJSON   bool     `name:"from-json" help:"Read previously written JSON quizzes instead of HTML pages"`
	Save       bool     `help:"Save each quiz to the library"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Query string `arg:"" optional:"" help:"Only list quizzes whose title fuzzily matches"`
	Limit int    `short:"n" help:"Maximum number of quizzes to list"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID      string   `arg:"" help:"Quiz ID"`
	Formats []string `short:"f" name:"format" default:"qz.txt" help:"Output format (repeatable)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Quiz ID"`
	Force bool   `help:"Confirm deletion"`
}
