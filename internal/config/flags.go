package config

import (
	"flag"
	"os"

	"visualnotes/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN of the record store (default from Config)
//	-e string   base endpoint of the object storage
//	-b string   object storage bucket name
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN of the record store")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "base endpoint of the object storage")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "object storage bucket")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
