package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamingfast/near-firehose-indexer/firehose"
	"github.com/streamingfast/near-firehose-indexer/metrics"
	"github.com/streamingfast/near-firehose-indexer/pipeline"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Reads StreamerMessage JSON lines and writes one FIRE BLOCK line per block on stdout",
	Long: cleanUsage(`
		Reads NEAR StreamerMessage JSON documents, one per line, from --input (stdin by
		default), projects each block to its sf.near.type.v1.Block wire form and writes
		it on stdout as a FIRE BLOCK line. Logs go to stderr.

		Any block that cannot be projected or written stops the process with a
		non-zero exit code.
	`),
	Args:    cobra.NoArgs,
	PreRunE: bindFlags,
	RunE:    runE,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("input", "-", "File holding StreamerMessage JSON lines, - for stdin")
	runCmd.Flags().Uint64("start-block", 0, "Blocks below this height are skipped")
	runCmd.Flags().Uint64("stop-block", 0, "Stop, without error, at the first block at or above this height, 0 to never stop")
	runCmd.Flags().String("metrics-listen-addr", "", "Address serving Prometheus /metrics, disabled when empty")
	runCmd.Flags().String("pprof-listen-addr", "", "Address serving net/http/pprof, disabled when empty")
}

func runE(cmd *cobra.Command, args []string) error {
	setupProfiler(viper.GetString("pprof-listen-addr"))

	input, closeInput, err := openInput(viper.GetString("input"))
	if err != nil {
		return err
	}
	defer closeInput()

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	if addr := viper.GetString("metrics-listen-addr"); addr != "" {
		server := metrics.NewServer(addr, prometheus.DefaultGatherer)
		server.Start()
		defer server.Shutdown()
	}

	pipe := pipeline.New(
		pipeline.NewStreamerMessageSource(input),
		pipeline.NewEmitHandler(firehose.NewWriter(os.Stdout), collector),
		pipeline.WithStartBlock(viper.GetUint64("start-block")),
		pipeline.WithStopBlock(viper.GetUint64("stop-block")),
	)

	go pipe.Run(cmd.Context())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		zlog.Info("received termination signal, quitting", zap.Stringer("signal", sig))
		pipe.Shutdown(nil)
	case <-pipe.Terminated():
	}

	// The block in flight, if any, is fully written before stdout is let go.
	<-pipe.Done()

	if err := pipe.Err(); err != nil {
		return err
	}

	zlog.Info("pipeline terminated")
	return nil
}
