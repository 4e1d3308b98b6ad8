// Package main provides the convnet CLI.
//
// The train command fits a convolutional layer to a hidden reference filter
// bank on random inputs, logging the mean squared error per epoch, and can
// write the learned filters as PNG images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/born-ml/convnet/internal/nn"
	"github.com/born-ml/convnet/internal/parallel"
	"github.com/born-ml/convnet/internal/tensor"
	"github.com/born-ml/convnet/internal/visual"
)

const version = "v0.1.0"

// options holds the train command configuration.
type options struct {
	size    int
	filter  int
	depth   int
	epochs  int
	steps   int
	lr      float64
	seed    uint64
	workers int
	out     string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("convnet: ")

	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("convnet %s\n", version)
	case "train":
		opts, err := parseOptions(os.Args[2:], os.Stderr)
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if err != nil {
			log.Fatalf("%v", err)
		}
		if _, err := train(opts, log.Printf); err != nil {
			log.Fatalf("training failed: %v", err)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "convnet %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  train      Fit a convolutional layer on synthetic data")
	fmt.Fprintln(w, "  version    Show version")
}

func parseOptions(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.size, "size", 12, "Side of the square input")
	fs.IntVar(&opts.filter, "filter", 3, "Side of each square filter")
	fs.IntVar(&opts.depth, "depth", 4, "Number of filters")
	fs.IntVar(&opts.epochs, "epochs", 10, "Number of training epochs")
	fs.IntVar(&opts.steps, "steps", 50, "Samples per epoch")
	fs.Float64Var(&opts.lr, "lr", 0.002, "Learning rate")
	fs.Uint64Var(&opts.seed, "seed", 1, "Random seed")
	fs.IntVar(&opts.workers, "workers", 0, "Worker goroutines per map (0 = one per CPU)")
	fs.StringVar(&opts.out, "out", "", "Directory for filter images (empty = none)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch {
	case opts.size <= 0, opts.filter <= 0, opts.depth <= 0:
		return options{}, fmt.Errorf("size, filter and depth must be positive")
	case opts.filter > opts.size:
		return options{}, fmt.Errorf("filter %d does not fit input %d", opts.filter, opts.size)
	case opts.epochs <= 0, opts.steps <= 0:
		return options{}, fmt.Errorf("epochs and steps must be positive")
	case opts.lr < 0:
		return options{}, fmt.Errorf("negative learning rate %v", opts.lr)
	}
	return opts, nil
}

// train runs the synthetic task and returns the mean loss of every epoch.
func train(opts options, logf func(format string, args ...any)) ([]float64, error) {
	inputShape := tensor.Shape{opts.size, opts.size}
	filterShape := tensor.Shape{opts.filter, opts.filter}

	reference := nn.NewConvolutional(filterShape, opts.depth, inputShape, rand.NewPCG(opts.seed, 1))
	conv := nn.NewConvolutional(filterShape, opts.depth, inputShape, rand.NewPCG(opts.seed, 2))
	if opts.workers > 0 {
		conv.SetParallel(parallel.DefaultConfig().WithWorkers(opts.workers))
		reference.SetParallel(parallel.DefaultConfig().WithWorkers(opts.workers))
	}

	model := nn.NewSequential(conv)
	loss := nn.NewMSE()
	data := rand.NewPCG(opts.seed, 3)

	logf("model: %v", conv)

	losses := make([]float64, 0, opts.epochs)
	for epoch := 1; epoch <= opts.epochs; epoch++ {
		var total float64
		for step := 0; step < opts.steps; step++ {
			input := tensor.Zeros(inputShape).RandomSND(data)
			total += model.TrainStep(input, reference.Forward(input), loss, opts.lr)
		}

		mean := total / float64(opts.steps)
		if math.IsNaN(mean) || math.IsInf(mean, 0) {
			return losses, fmt.Errorf("epoch %d: loss diverged (try a smaller -lr)", epoch)
		}
		losses = append(losses, mean)
		logf("epoch %d/%d: loss=%.6f", epoch, opts.epochs, mean)
	}

	if opts.out != "" {
		paths, err := visual.SaveFilters(opts.out, conv.Filters())
		if err != nil {
			return losses, fmt.Errorf("failed to save filters: %w", err)
		}
		logf("wrote %d filter images to %s", len(paths), opts.out)
	}

	return losses, nil
}
