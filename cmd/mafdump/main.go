// Command mafdump decodes MAF alignment files and prints what it finds.
//
// Input files may be gzip compressed. With no arguments, or "-", it reads
// standard input. Decoding stops at the first malformed line.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "mafdump [file...]",
		Short:        "Decode MAF alignment files",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			conf, err := loadConfig(v)
			if err != nil {
				return err
			}

			log, err := newLogger(conf.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if len(args) == 0 {
				args = []string{"-"}
			}

			d := &dumper{
				conf:  conf,
				log:   log,
				stdin: cmd.InOrStdin(),
				out:   cmd.OutOrStdout(),
			}

			return d.dump(args)
		},
	}

	flag := cmd.Flags()
	flag.String("config", "", "Config file (yaml, json or toml).")
	flag.String("format", "summary", "Output format: summary, maf, json or spew.")
	flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Bool("comments", false, "Include comment lines in maf, json and spew output.")

	_ = v.BindPFlags(flag)
	v.SetEnvPrefix("MAFDUMP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}
