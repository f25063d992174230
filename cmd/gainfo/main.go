// Command gainfo prints properties of the geometric algebra models used by
// the benchmark suite.
//
// Usage:
//
//	gainfo [flags] [library ...]
//
// Without arguments it prints the model selected by the GABM_MODEL,
// GABM_D_DIMENSIONS and GABM_N_DIMENSIONS environment variables, or every
// model when none is set.
//
// Examples:
//
//	gainfo c3ga
//	gainfo e2ga e3ga e4ga
//	GABM_MODEL=ConformalModel GABM_D_DIMENSIONS=2 gainfo
//	gainfo -all
//	gainfo -d 3
//	gainfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/laffernandes/ga-benchmark/gabm"
	"github.com/laffernandes/ga-benchmark/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

func run(args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	fs := flag.NewFlagSet("gainfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	all := fs.Bool("all", false, "show all registered models")
	list := fs.Bool("list", false, "list available library names")
	dim := fs.Int("d", 0, "show only models of this Euclidean dimension")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gainfo [flags] [library ...]\n\n")
		fmt.Fprintf(stderr, "Prints properties of the geometric algebra models.\n")
		fmt.Fprintf(stderr, "Without arguments, prints the model selected by GABM_* variables or all models.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  gainfo c3ga\n")
		fmt.Fprintf(stderr, "  GABM_MODEL=ConformalModel GABM_D_DIMENSIONS=2 gainfo\n")
		fmt.Fprintf(stderr, "  gainfo -d 3\n")
		fmt.Fprintf(stderr, "  gainfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *list {
		for _, e := range model.Global.ListEntries() {
			fmt.Fprintln(stdout, e.Name)
		}
		return 0
	}

	adapters, err := resolve(fs.Args(), *all || *dim > 0, lookupEnv, log)
	if err != nil {
		log.WithError(err).Error("cannot select models")
		return 1
	}
	if len(adapters) == 0 {
		log.Error("no matching models")
		return 1
	}

	if *dim > 0 {
		adapters = filterDimension(adapters, *dim)
		if len(adapters) == 0 {
			log.Errorf("no model supports D=%d", *dim)
			return 1
		}
	}

	features := cpu.DetectFeatures()
	fmt.Fprintf(stdout, "coefficient kernels: arch=%s avx2=%t sse2=%t neon=%t\n\n",
		features.Architecture, features.HasAVX2, features.HasSSE2, features.HasNEON)

	printModels(stdout, adapters, log)
	return 0
}

// resolve turns library names, or the GABM_* environment, into adapters.
func resolve(names []string, all bool, lookupEnv func(string) (string, bool), log *logrus.Logger) ([]*gabm.Adapter, error) {
	if len(names) == 0 && !all && envSelects(lookupEnv) {
		cfg, err := gabm.ConfigFromEnv(lookupEnv)
		if err != nil {
			return nil, err
		}
		a, err := gabm.NewFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		log.WithField("config", cfg.String()).Debug("model selected from environment")
		return []*gabm.Adapter{a}, nil
	}

	if len(names) == 0 || all {
		names = nil
		for _, e := range model.Global.ListEntries() {
			names = append(names, e.Name)
		}
	}

	var out []*gabm.Adapter
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		m, err := model.Global.LookupName(name)
		if err != nil {
			log.Warnf("unknown library %q (use -list to see available)", name)
			continue
		}
		a, err := gabm.New(gabm.WithModel(m.Kind()), gabm.WithDimensions(m.D()))
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"library": m.Name(), "n": m.N()}).Debug("model resolved")
		out = append(out, a)
	}
	return out, nil
}

func filterDimension(adapters []*gabm.Adapter, d int) []*gabm.Adapter {
	out := adapters[:0]
	for _, a := range adapters {
		if a.Model().D() == d {
			out = append(out, a)
		}
	}
	return out
}

func envSelects(lookupEnv func(string) (string, bool)) bool {
	for _, key := range []string{gabm.EnvModel, gabm.EnvDimensions, gabm.EnvEmbeddingDimensions} {
		if v, ok := lookupEnv(key); ok && v != "" {
			return true
		}
	}
	return false
}

type summary struct {
	unitNorm  float64
	rotorDet  float64
	pointNull string
}

func summarize(a *gabm.Adapter) (summary, error) {
	m := a.Model()
	e1, err := m.E(1)
	if err != nil {
		return summary{}, err
	}
	e2, err := m.E(2)
	if err != nil {
		return summary{}, err
	}
	r, err := gabm.Rotor(0.5, e1.Wedge(e2))
	if err != nil {
		return summary{}, err
	}

	s := summary{
		unitNorm:  a.SquaredReverseNorm(e1, 1),
		rotorDet:  mat.Det(gabm.RotorMatrix(r)),
		pointNull: "-",
	}

	if m.Kind() == model.KindConformal {
		coords := make([]float64, m.D())
		for i := range coords {
			coords[i] = float64(i + 1)
		}
		p, err := a.Point(coords...)
		if err != nil {
			return summary{}, err
		}
		s.pointNull = fmt.Sprintf("%.3g", a.SquaredReverseNorm(p, 1))
	}
	return s, nil
}

func printModels(w io.Writer, adapters []*gabm.Adapter, log *logrus.Logger) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Library\tModel\tD\tN\tBlades\tSignature\tBasis\t|e1|^2\tdet(R)\tP.P\n"); err != nil {
		log.WithError(err).Error("failed to write output header")
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t-----\t-\t-\t------\t---------\t-----\t------\t------\t---\n"); err != nil {
		log.WithError(err).Error("failed to write output header")
		return
	}

	for _, a := range adapters {
		m := a.Model()
		s, err := summarize(a)
		if err != nil {
			log.WithError(err).WithField("library", m.Name()).Warn("skipping model")
			continue
		}

		sig := make([]string, 0, m.N())
		for _, v := range m.Algebra().Signature() {
			if v < 0 {
				sig = append(sig, "-")
			} else if v > 0 {
				sig = append(sig, "+")
			} else {
				sig = append(sig, "0")
			}
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\t%.4g\t%.4g\t%s\n",
			m.Name(),
			m.Kind(),
			m.D(),
			a.N(),
			m.Algebra().Size(),
			strings.Join(sig, ""),
			strings.Join(m.BasisNames(), ","),
			s.unitNorm,
			s.rotorDet,
			s.pointNull,
		); err != nil {
			log.WithError(err).Error("failed to write output row")
			return
		}
	}
	if err := tw.Flush(); err != nil {
		log.WithError(err).Error("failed to flush output")
	}
}
