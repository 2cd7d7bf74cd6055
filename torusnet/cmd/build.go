package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/sarchlab/toruscredit/config"
	"github.com/sarchlab/toruscredit/datarecording"
	"github.com/sarchlab/toruscredit/monitoring"
	"github.com/sarchlab/toruscredit/noc/networking/torus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// envPrefix marks the environment variables that configure a network, for
// example TORUS_K=8.
const envPrefix = "TORUS_"

type buildOptions struct {
	name     string
	cfg      *config.Config
	latency  int
	recorder datarecording.DataRecorder
	monitor  *monitoring.Monitor
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a unidirectional torus and report its structure.",
	Long: "`build --k 4 --n 2` builds a 4-ary 2-cube. Parameters are read " +
		"from a YAML or JSON file, then from TORUS_ environment variables, " +
		"then from flags, each overriding the previous one.",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.SilenceUsage = true

		cfg, err := loadBuildConfig(cmd)
		if err != nil {
			atexit.Fatalf("Error loading configuration: %v", err)
		}

		opts := buildOptions{cfg: cfg}
		opts.name, _ = cmd.Flags().GetString("name")
		opts.latency, _ = cmd.Flags().GetInt("latency")

		recordPath, _ := cmd.Flags().GetString("record")
		if cmd.Flags().Changed("record") {
			opts.recorder = datarecording.New(recordPath)
			atexit.Register(func() { opts.recorder.Close() })
		}

		monitor, _ := cmd.Flags().GetBool("monitor")
		if monitor {
			port, _ := cmd.Flags().GetInt("port")
			opts.monitor = monitoring.NewMonitor().WithPortNumber(port)
		}

		_, err = runBuild(opts, os.Stdout)
		if err != nil {
			atexit.Fatalf("Error building network: %v", err)
		}

		if opts.monitor != nil {
			openBrowser, _ := cmd.Flags().GetBool("open")
			opts.monitor.StartServer(openBrowser)
			waitForInterrupt()
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addBuildFlags(buildCmd)
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().Int("k", 4, "Radix, the number of nodes per dimension")
	cmd.Flags().Int("n", 2, "Number of dimensions")
	cmd.Flags().String("name", "Torus", "Name of the network")
	cmd.Flags().Int("latency", 1, "Channel latency in cycles")
	cmd.Flags().String("config", "", "YAML or JSON file with k and n")
	cmd.Flags().StringSlice("env", nil,
		"Dotenv files to load before reading TORUS_ variables")
	cmd.Flags().String("record", "",
		"Record the topology into <path>.sqlite3; empty picks a unique name")
	cmd.Flags().Bool("monitor", false,
		"Serve the network over HTTP until interrupted")
	cmd.Flags().Int("port", 0, "Port of the monitoring server")
	cmd.Flags().Bool("open", false,
		"Open the monitoring page in the default browser")
}

// loadBuildConfig merges the configuration file, the environment and the
// flags, in increasing priority.
func loadBuildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.New()

	file, _ := cmd.Flags().GetString("config")
	if file != "" {
		fileCfg, err := config.LoadFile(file)
		if err != nil {
			return nil, err
		}

		cfg.Merge(fileCfg)
	}

	dotenvFiles, _ := cmd.Flags().GetStringSlice("env")

	envCfg, err := config.LoadEnv(envPrefix, dotenvFiles...)
	if err != nil {
		return nil, err
	}

	cfg.Merge(envCfg)

	for _, key := range []string{"k", "n"} {
		value, _ := cmd.Flags().GetInt(key)
		if cmd.Flags().Changed(key) || !cfg.Has(key) {
			cfg.Set(key, value)
		}
	}

	return cfg, nil
}

// runBuild builds the network described by opts and writes its summary and
// analysis to out.
func runBuild(opts buildOptions, out io.Writer) (*torus.Network, error) {
	builder := torus.MakeBuilder().
		WithConfig(opts.cfg).
		WithChannelLatency(opts.latency).
		WithHook(torus.NewTopologyLogger(log.New(out, "", 0)))

	if opts.recorder != nil {
		builder = builder.WithHook(
			datarecording.NewTopologyRecorder(opts.recorder))
	}

	if opts.monitor != nil {
		builder = builder.WithHook(opts.monitor)
	}

	n, err := builder.Build(opts.name)
	if err != nil {
		return nil, err
	}

	analysis := n.Analyze()

	fmt.Fprintf(out, "Capacity: %g\n", n.Capacity())
	fmt.Fprintf(out, "Strongly connected: %t\n", analysis.StronglyConnected)
	fmt.Fprintf(out, "Diameter: %d\n", analysis.Diameter)

	return n, nil
}

func waitForInterrupt() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
