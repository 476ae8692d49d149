// Package main provides the sketchnet driver: it trains a digit classifier
// in the background, replays pointer strokes onto a shared canvas and
// prints the network's live guesses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/born-ml/sketchnet/internal/canvas"
	"github.com/born-ml/sketchnet/internal/dataset"
	"github.com/born-ml/sketchnet/internal/nn"
	"github.com/born-ml/sketchnet/internal/trainer"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("sketchnet %s\n", version)
			return
		case "cpu":
			printCPU(os.Stdout)
			return
		}
	}

	dataDir := flag.String("data", "./data", "Directory containing IDX digit files")
	useSynthetic := flag.Bool("synthetic", false, "Use synthetic data instead of IDX files")
	maxSamples := flag.Int("samples", 0, "Max samples to load (0 = all)")
	holdout := flag.Int("holdout", 1000, "Samples held back for evaluation")
	hidden := flag.String("hidden", "100", "Comma-separated hidden layer sizes")
	lr := flag.Float64("lr", 0.06, "Learning rate")
	iterations := flag.Int("iterations", 0, "Training steps (0 = until interrupted or -duration)")
	duration := flag.Duration("duration", 30*time.Second, "Stop training after this long (0 = no limit)")
	flush := flag.Int("flush", 100, "Errors buffered before each history append")
	poll := flag.Int("poll", 100, "Iterations between cancellation checks")
	seed := flag.Uint64("seed", 1, "Seed for weights and shuffling")
	strokes := flag.String("strokes", "14,4 14,24", "Strokes to draw: points 'x,y' separated by spaces, strokes by ';'")
	paint := flag.String("paint", "#000000", "Brush colour")
	blank := flag.String("blank", "#ffffff", "Background colour")
	brushSize := flag.Float64("brush", 1.5, "Brush radius in pixels")
	smoothness := flag.Float64("smooth", 50, "Brush smoothness (0 = hard edge)")
	intensity := flag.Float64("intensity", 5, "Brush intensity")
	export := flag.String("export", "", "Write the drawing as IDX files with this path prefix")
	label := flag.Int("label", 0, "Label recorded with -export")
	verbose := flag.Bool("v", false, "Log training progress to stderr")
	flag.Parse()

	fmt.Println("sketchnet - draw a digit, watch the network learn")
	printCPU(os.Stdout)

	// Load data
	var set *dataset.Set
	if *useSynthetic {
		fmt.Println("\nUsing synthetic data (bar patterns)...")
		n := *maxSamples
		if n == 0 {
			n = 2000
		}
		set = &dataset.Set{Rows: 28, Cols: 28, Samples: dataset.Synthetic(n, 28, 28, *seed)}
	} else {
		fmt.Printf("\nLoading IDX data from: %s\n", *dataDir)
		var err error
		set, err = loadDir(*dataDir)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("\nError: digit data files not found!")
				fmt.Println("Expected train-images-idx3-ubyte[.gz] and train-labels-idx1-ubyte[.gz]")
				fmt.Println("in the data directory, or run with -synthetic.")
				os.Exit(1)
			}
			log.Fatalf("Failed to load data: %v", err)
		}
		if *maxSamples > 0 && set.Len() > *maxSamples {
			set.Samples = set.Samples[:*maxSamples]
		}
	}
	evalSet, trainSet := set.Split(min(*holdout, set.Len()/5))
	fmt.Printf("   Train: %d samples, Eval: %d samples (%dx%d)\n", len(trainSet), len(evalSet), set.Cols, set.Rows)

	// Build network
	sizes, err := parseSizes(*hidden)
	if err != nil {
		log.Fatalf("Bad -hidden: %v", err)
	}
	structure := append([]int{set.Rows * set.Cols}, sizes...)
	structure = append(structure, dataset.Classes)

	net, err := nn.New(nn.Config{Structure: structure, LearningRate: float32(*lr)})
	if err != nil {
		log.Fatalf("Failed to create network: %v", err)
	}
	net.PopulateRandomWeights(rand.NewPCG(*seed, *seed+1))
	fmt.Printf("\nNetwork: %v, learning rate %.3f\n", structure, *lr)

	cfg := trainer.DefaultConfig()
	cfg.FlushEvery = *flush
	cfg.PollEvery = *poll
	cfg.MaxIterations = *iterations
	cfg.Seed = *seed
	if *verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	tr, err := trainer.New(net, trainSet, cfg)
	if err != nil {
		log.Fatalf("Failed to create trainer: %v", err)
	}

	// Canvas
	ccfg := canvas.DefaultConfig()
	ccfg.Width, ccfg.Height = set.Cols, set.Rows
	if ccfg.Paint, err = canvas.ParseColor(*paint); err != nil {
		log.Fatalf("Bad -paint: %v", err)
	}
	if ccfg.Blank, err = canvas.ParseColor(*blank); err != nil {
		log.Fatalf("Bad -blank: %v", err)
	}
	ccfg.Brush = canvas.Brush{Size: float32(*brushSize), Smoothness: float32(*smoothness), Intensity: float32(*intensity)}
	c, err := canvas.New(ccfg)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	shared := canvas.NewShared(c)

	paths, err := parseStrokes(*strokes)
	if err != nil {
		log.Fatalf("Bad -strokes: %v", err)
	}
	paths = interpolateStrokes(paths)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	fmt.Println("\nTraining in the background (Ctrl+C to stop)...")
	run, err := tr.Start(ctx)
	if err != nil {
		log.Fatalf("Failed to start training: %v", err)
	}
	fmt.Printf("   Run %s\n", run.ID)

	drawn := make(chan error, 1)
	go func() { drawn <- replay(ctx, shared, paths) }()

	watch(tr, shared, run)

	if err := run.Wait(); err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	if err := <-drawn; err != nil && ctx.Err() == nil {
		log.Fatalf("Drawing failed: %v", err)
	}

	// Results
	fmt.Printf("\nTrained %d iterations, last errors %v\n", run.Iterations(), tr.History().Tail(5))
	if len(evalSet) > 0 {
		ev, err := tr.Evaluate(evalSet)
		if err != nil {
			log.Fatalf("Evaluation failed: %v", err)
		}
		fmt.Printf("Eval: %d/%d correct (%.2f%%), mean error %.4f\n", ev.Correct, ev.Samples, 100*ev.Accuracy, ev.MeanError)
	}

	fmt.Println("\nDrawing:")
	ink := shared.Intensities()
	render(os.Stdout, ink, set.Cols)

	out, err := tr.Predict(ink)
	if err != nil {
		log.Fatalf("Prediction failed: %v", err)
	}
	printOutputs(os.Stdout, out)

	if *export != "" {
		if err := exportDrawing(*export, ink, set.Rows, set.Cols, *label); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("\nWrote %s-images-idx3-ubyte and %s-labels-idx1-ubyte\n", *export, *export)
	}
}

// watch prints a status line every tick until the run stops, showing the
// last known guess when either lock is busy.
func watch(tr *trainer.Trainer, shared *canvas.Shared, run *trainer.Run) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	last := trainer.Prediction{Class: -1}
	for {
		select {
		case <-run.Done():
			return
		case <-ticker.C:
		}

		if p, ok, err := tr.TryClassify(shared); err != nil {
			log.Printf("classify: %v", err)
		} else if ok {
			last = p
		}
		recent := tr.History().Tail(100)
		fmt.Printf("   iter %8d  error %.4f  guess %2d (%.2f)\n", run.Iterations(), mean(recent), last.Class, last.Confidence)
	}
}

func loadDir(dir string) (*dataset.Set, error) {
	images := pick(dir, "train-images-idx3-ubyte")
	labels := pick(dir, "train-labels-idx1-ubyte")
	return dataset.LoadIDX(images, labels)
}

// pick prefers the uncompressed file and falls back to the .gz one.
func pick(dir, name string) string {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if _, err := os.Stat(path + ".gz"); err == nil {
		return path + ".gz"
	}
	return path
}

func exportDrawing(prefix string, ink []byte, rows, cols, label int) error {
	images, err := os.Create(prefix + "-images-idx3-ubyte")
	if err != nil {
		return err
	}
	defer images.Close()
	labels, err := os.Create(prefix + "-labels-idx1-ubyte")
	if err != nil {
		return err
	}
	defer labels.Close()

	set := &dataset.Set{Rows: rows, Cols: cols, Samples: []nn.Sample{{Data: ink, Label: label}}}
	if err := dataset.WriteIDX(images, labels, set); err != nil {
		return err
	}
	if err := images.Close(); err != nil {
		return err
	}
	return labels.Close()
}
