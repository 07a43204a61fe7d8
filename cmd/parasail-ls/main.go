package main

import (
	"fmt"
	"os"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"github.com/tliron/glsp/server"

	"github.com/adl5423/parasail-ls/implementation"
)

const lsName = "parasail-ls"

var log = logging.MustGetLogger(lsName)

var (
	verbose int
	logFile string
)

var rootCommand = &cobra.Command{
	Use:   lsName,
	Short: "ParaSail language server",
	Long:  "A language server providing diagnostics, completion, hover, formatting and a symbol outline for ParaSail, over stdio.",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()

		s := server.NewServer(&implementation.Handler, lsName, verbose > 1)
		if err := s.RunStdio(); err != nil {
			log.Errorf("%s", err)
			atexit.Exit(1)
		}
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(implementation.ServerVersion)
	},
}

// configureLogging sets up the go-logging backend shared by every package
// logger. Stdout belongs to the protocol, so logs go to stderr or a file.
func configureLogging() {
	writer := os.Stderr
	if logFile != "" {
		if file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600); err == nil {
			writer = file
			atexit.Register(func() { file.Close() })
		} else {
			fmt.Fprintln(os.Stderr, "cannot open log file:", err)
		}
	}

	formatter := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.8s} %{module} %{message}`)
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(writer, "", 0), formatter))

	switch verbose {
	case 0:
		backend.SetLevel(logging.ERROR, "")
	case 1:
		backend.SetLevel(logging.INFO, "")
	default:
		backend.SetLevel(logging.DEBUG, "")
	}

	logging.SetBackend(backend)
}

func init() {
	rootCommand.PersistentFlags().CountVarP(&verbose, "verbose", "v", "add a log verbosity level (can be used twice)")
	rootCommand.PersistentFlags().StringVarP(&logFile, "log-file", "l", "", "log to file instead of stderr")
	rootCommand.AddCommand(versionCommand)
}

func main() {
	defer atexit.Exit(0)
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
}
