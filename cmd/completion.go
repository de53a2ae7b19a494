package cmd

import (
	"flag"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	periods := predict.Set{capgains.Initial.String(), capgains.Later.String(), capgains.All.String()}
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"l": predict.Files("*.csv"),
			"y": predict.Something,
			"p": periods,
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predict.Nothing
		})
		root.Sub[c.Name()] = sub
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "readme", "*"))
	}
	return root
}

// Complete answers a shell completion request and exits, when the process was
// started for one. It must run before the flags are parsed.
//
// Enable it with: COMP_INSTALL=1 cgs
func Complete(name string) {
	complete.Complete(name, completion())
}
