package cmd

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

// setupLogging picks the log level from the global flags. An explicit
// --log-level wins over -v (info) and -vv (debug).
func setupLogging(ctx *cli.Context) error {
	name := ctx.GlobalString("log-level")
	switch {
	case name != "":
	case ctx.GlobalBool("vv"):
		name = "debug"
	case ctx.GlobalBool("v"):
		name = "info"
	default:
		return nil
	}

	level, ok := log.ParseLevel(name)
	if !ok {
		return fmt.Errorf("unknown log level %q", name)
	}
	log.SetLevel(level)
	return nil
}
