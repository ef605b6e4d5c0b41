package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "firenear",
	Short:         "Projects NEAR blocks to their Firehose wire form and emits them as FIRE lines",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(func() {
		viper.SetEnvPrefix("FIRENEAR")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()
	})
}

// bindFlags is used as PreRunE so only the flags of the executing command are
// bound, commands can then share flag names.
func bindFlags(cmd *cobra.Command, _ []string) (err error) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if err != nil {
			return
		}
		if bindErr := viper.BindPFlag(flag.Name, flag); bindErr != nil {
			err = fmt.Errorf("binding flag %q: %w", flag.Name, bindErr)
		}
	})
	return err
}

// openInput returns stdin for "-".
func openInput(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return file, func() { file.Close() }, nil
}

// cleanUsage strips the indentation of multi-line command descriptions.
func cleanUsage(in string) string {
	lines := strings.Split(strings.Trim(in, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
