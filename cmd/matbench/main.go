// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gorse-io/matbench/base/log"
	"github.com/gorse-io/matbench/benchmark"
	"github.com/gorse-io/matbench/cmd/version"
	"github.com/gorse-io/matbench/common/util"
	"github.com/gorse-io/matbench/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func newMatbenchCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "matbench [N]",
		Short: "Time a naive N×N float32 matrix multiplication.",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Show version
			if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
				fmt.Fprint(cmd.OutOrStdout(), version.BuildInfo())
				return
			}

			// setup logger
			debug, _ := cmd.PersistentFlags().GetBool("debug")
			log.SetLogger(cmd.PersistentFlags(), debug)

			// load config
			conf := config.GetDefaultConfig()
			if configPath, _ := cmd.PersistentFlags().GetString("config"); configPath != "" {
				var err error
				conf, err = config.LoadConfig(configPath)
				if err != nil {
					log.Logger().Fatal("failed to load config", zap.Error(err))
				}
				log.Logger().Info("load config", zap.String("path", configPath))
			}

			n := conf.Benchmark.Size
			if len(args) > 0 {
				n = util.Atoi[int](args[0])
			}
			result := benchmark.NewMatrixBenchmark(&conf.Benchmark).Run(n)
			if _, err := result.WriteTo(cmd.OutOrStdout()); err != nil {
				log.Logger().Error("failed to write result", zap.Error(err))
			}
		},
	}
	log.AddFlags(command.PersistentFlags())
	command.PersistentFlags().Bool("debug", false, "use debug log mode")
	command.PersistentFlags().BoolP("version", "v", false, "matbench version")
	command.PersistentFlags().StringP("config", "c", "", "configuration file path")
	return command
}

var negativeNumber = regexp.MustCompile(`^-[0-9]`)

// positionalArgs moves a negative matrix size behind "--" so that pflag does
// not parse it as a shorthand flag. Arguments are returned unchanged if the
// first positional argument is not a negative number.
func positionalArgs(flagSet *pflag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case negativeNumber.MatchString(arg):
			ret := append(append([]string{}, args[:i]...), args[i+1:]...)
			return append(ret, "--", arg)
		case strings.HasPrefix(arg, "-") && !strings.Contains(arg, "="):
			if flag := lookupFlag(flagSet, arg); flag != nil && flag.NoOptDefVal == "" {
				// skip the flag value
				i++
			}
		case !strings.HasPrefix(arg, "-"):
			return args
		}
	}
	return args
}

func lookupFlag(flagSet *pflag.FlagSet, arg string) *pflag.Flag {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		return flagSet.Lookup(name)
	}
	if len(arg) == 2 {
		return flagSet.ShorthandLookup(arg[1:])
	}
	return nil
}

func main() {
	command := newMatbenchCommand()
	command.SetArgs(positionalArgs(command.PersistentFlags(), os.Args[1:]))
	if err := command.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
