// Copyright 2023 The Shadowcall Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Binary shadowcall inspects the built-in syscall hook tables. It exists for
// documentation and coverage review; the library itself has no binary
// surface.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(Rules), "")

	debug := flag.Bool("debug", false, "enable debug logging.")
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}

// fatalf logs the error and exits with a failure status. Subcommands use it
// for conditions the user must fix, such as an unknown arch name.
func fatalf(format string, args ...any) {
	logrus.Fatalf(format, args...)
}
