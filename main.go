package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/listset/harness"
	"github.com/tuannh982/listset/utils/collections"
	"github.com/tuannh982/listset/utils/observer"
	"github.com/tuannh982/listset/utils/random"
)

type CLI struct {
	Items         int               `short:"n" help:"Keys drawn per phase" default:"100" env:"LISTSET_ITEMS"`
	Seed          int64             `short:"s" help:"Workload seed, 0 picks one from the clock" default:"0" env:"LISTSET_SEED"`
	AddRange      random.Range[int] `help:"Key range of the add phase (low:high)" default:"1:100" env:"LISTSET_ADD_RANGE"`
	RemoveRange   random.Range[int] `help:"Key range of the remove phase (low:high)" default:"50:100" env:"LISTSET_REMOVE_RANGE"`
	ContainsRange random.Range[int] `help:"Key range of the contains phase (low:high)" default:"1:50" env:"LISTSET_CONTAINS_RANGE"`
	Verbose       bool              `short:"v" help:"Log every set operation" env:"LISTSET_VERBOSE"`
	Metrics       bool              `help:"Log event counters after the run" env:"LISTSET_METRICS"`
}

func (c *CLI) Config() harness.Config {
	return harness.Config{
		Items:         c.Items,
		Seed:          c.Seed,
		AddRange:      c.AddRange,
		RemoveRange:   c.RemoveRange,
		ContainsRange: c.ContainsRange,
	}
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("listset"),
		kong.Description("Differential test of the linked list set against a hash set oracle."),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	logger := log.WithFields(log.Fields{"component": "listset"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.InfoLevel)
	if cli.Verbose {
		logger.Logger.SetLevel(log.DebugLevel)
	}
	os.Exit(run(cli.Config(), cli.Metrics, logger))
}

func run(cfg harness.Config, metrics bool, logger *log.Entry) int {
	reg := prom.NewRegistry()
	obs := observer.Multi(
		observer.NewLogObserver(logger),
		observer.NewMetricsObserver(reg),
	)
	h, err := harness.New(cfg, obs)
	if err != nil {
		logger.WithError(err).Error("cannot create harness")
		return 1
	}
	logger = logger.WithField("seed", h.Seed())
	err = h.Run(collections.NewLinkedSet[int](obs), collections.NewHashSet[int]())
	if metrics {
		dumpMetrics(reg, logger)
	}
	var mismatch *harness.MismatchError
	switch {
	case errors.As(err, &mismatch):
		logger.WithFields(log.Fields{
			"phase":    mismatch.Phase,
			"index":    mismatch.Index,
			"key":      mismatch.Key,
			"expected": mismatch.Expected,
			"actual":   mismatch.Actual,
		}).Error("set diverged from oracle")
		return 1
	case err != nil:
		logger.WithError(err).Error("set diverged from oracle")
		return 1
	}
	logger.Info("set agrees with oracle")
	return 0
}

func dumpMetrics(reg *prom.Registry, logger *log.Entry) {
	mfs, err := reg.Gather()
	if err != nil {
		logger.WithError(err).Warn("cannot gather metrics")
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			fields := log.Fields{"metric": mf.GetName()}
			for _, l := range m.GetLabel() {
				fields[l.GetName()] = l.GetValue()
			}
			logger.WithFields(fields).Info(m.GetCounter().GetValue())
		}
	}
}
