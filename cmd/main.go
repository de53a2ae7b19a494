package cmd

import (
	"github.com/google/subcommands"
)

// Commands are the subcommands of cgs.
var Commands = []subcommands.Command{
	&earningsCmd{},
	&txCmd{},
	&feesCmd{},
	&depositsCmd{},
	&dividendsCmd{},
	&summaryCmd{},
	&topicCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		group := "reports"
		if cmd.Name() == "topic" {
			group = "help"
		}
		c.Register(cmd, group)
	}
}
