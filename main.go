package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outputPath string
	strict     bool
	verbose    bool
	initReset  bool

	mainCmd = &cobra.Command{
		Use:   "kconfig-sensor-pins",
		Short: "Generate the sensor pin selection Kconfig fragment",
		Args:  cobra.NoArgs,
		Run:   runGenerate,
	}
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Write the Kconfig fragment (default)",
		Args:  cobra.NoArgs,
		Run:   runGenerate,
	}
	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Fail if the Kconfig fragment on disk is not up to date",
		Args:  cobra.NoArgs,
		Run:   runCheck,
	}
	pinsCmd = &cobra.Command{
		Use:   "pins",
		Short: "List the selectable pins",
		Args:  cobra.NoArgs,
		Run:   runPins,
	}
	initCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in tables to a TOML file for editing",
		Args:  cobra.MaximumNArgs(1),
		Run:   runInit,
	}
)

// loadValidated loads the tables and applies --output. Fatal on any
// validation error.
func loadValidated() Config {
	c, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalln("load config:", err)
	}
	if outputPath != "" {
		c.Filename = outputPath
	}
	err = c.Validate(strict)
	if err != nil {
		log.Fatalln("validate config:", err)
	}
	return c
}

func runGenerate(cmd *cobra.Command, args []string) {
	c := loadValidated()
	err := generate(c.Filename, c)
	if err != nil {
		log.Fatalln("generate:", err)
	}
	log.WithFields(log.Fields{
		"File":        c.Filename,
		"Descriptors": len(c.Descriptor),
		"Pins":        len(c.Pin),
	}).Infoln("kconfig written")
}

func runCheck(cmd *cobra.Command, args []string) {
	c := loadValidated()
	err := check(c.Filename, c)
	if err != nil {
		log.Fatalln("check:", err)
	}
	log.WithField("File", c.Filename).Infoln("kconfig up to date")
}

func runPins(cmd *cobra.Command, args []string) {
	c := loadValidated()
	err := writePins(cmd.OutOrStdout(), c)
	if err != nil {
		log.Fatalln("pins:", err)
	}
}

// writePins prints the pin table along with the descriptors defaulting to
// each pin.
func writePins(w io.Writer, c Config) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GPIO\tRTC\tDEFAULT FOR")
	for _, p := range c.Pin {
		var users []string
		for _, d := range c.Descriptor {
			if d.Default == p.GPIO {
				users = append(users, d.Name)
			}
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\n", p.GPIO, p.RTC, strings.Join(users, ", "))
	}
	return tw.Flush()
}

func runInit(cmd *cobra.Command, args []string) {
	path := DefaultConfigPath
	if len(args) > 0 {
		path = args[0]
	}
	err := initConfig(path, initReset)
	if err != nil {
		log.Fatalln("init:", err)
	}
	log.WithField("File", path).Infoln("config written")
}

func main() {
	initCmd.Flags().BoolVar(&initReset, "reset", false, "Reset config. Overwrites the file even if it already exists")
	mainCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config path. TOML file with the descriptor and pin tables, default is the built-in tables")
	mainCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output path. Overrides the Filename from the config")
	mainCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail if a descriptor default is not in the pin table")
	mainCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	mainCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		log.WithField("Command", cmd.Name()).Debugln("starting")
	}
	mainCmd.AddCommand(generateCmd, checkCmd, pinsCmd, initCmd)
	if err := mainCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
