// Package main searches wave parameters with CMA-ES so the field's height
// distribution matches a target, and writes the result as a settings
// document.
//
// Usage: go run ./cmd/tune -output out -target-std 30 -target-spread 80
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/store"
)

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	frames := flag.Int("frames", 600, "Frames simulated per evaluation")
	seeds := flag.Int("seeds", 2, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 120, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	targetStd := flag.Float64("target-std", 30, "Target standard deviation of point heights")
	targetSpread := flag.Float64("target-spread", 80, "Target P90-P10 height spread")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	params := NewParamVector()
	base := settings.DefaultDocument()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewFitnessEvaluator(params, *frames, evalSeeds, cfg, base,
		Target{Std: *targetStd, Spread: *targetSpread})

	dim := params.Dim()
	initX := params.Normalize(params.Extract(base.Base))

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return evaluator.Evaluate(params.Denormalize(x))
		},
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}
	optSettings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0,
	}

	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()

	header := []string{"eval", "fitness", "height_std", "height_spread"}
	for _, spec := range params.Specs {
		header = append(header, spec.Key.String())
	}
	logWriter.Write(header)

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	startTime := time.Now()

	originalFunc := problem.Func
	problem.Func = func(x []float64) float64 {
		fitness := originalFunc(x)
		evalCount++

		clamped := params.Clamp(params.Denormalize(x))
		if fitness < bestFitness {
			bestFitness = fitness
			bestParams = clamped
		}

		stats := evaluator.LastStats()
		row := []string{
			strconv.Itoa(evalCount),
			fmt.Sprintf("%.6f", fitness),
			fmt.Sprintf("%.3f", stats.Std),
			fmt.Sprintf("%.3f", stats.P90-stats.P10),
		}
		for _, v := range clamped {
			row = append(row, fmt.Sprintf("%.6f", v))
		}
		logWriter.Write(row)
		logWriter.Flush()

		elapsed := time.Since(startTime)
		remaining := time.Duration(*maxEvals-evalCount) * (elapsed / time.Duration(evalCount))
		fmt.Printf("Eval %d/%d: fitness=%.4f std=%.1f spread=%.1f (best=%.4f) | elapsed: %s, ETA: %s\n",
			evalCount, *maxEvals, fitness, stats.Std, stats.P90-stats.P10, bestFitness,
			formatDuration(elapsed), formatDuration(remaining))
		return fitness
	}

	fmt.Printf("Starting CMA-ES with %d parameters, population=%d, max_evals=%d\n", dim, popSize, *maxEvals)
	fmt.Printf("Seeds per evaluation: %d, frames per run: %d\n", *seeds, *frames)

	result, err := optimize.Minimize(problem, initX, optSettings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	fmt.Printf("\nOptimization complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best fitness: %.4f\n", bestFitness)
	if bestParams == nil {
		return
	}

	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Key, bestParams[i])
	}

	doc := settings.DefaultDocument()
	doc.Base.Overlay(params.Partial(bestParams))
	outPath := filepath.Join(*outputDir, "best_settings.json")
	fs := &store.FileStore{Path: outPath}
	if err := fs.Write(doc); err != nil {
		log.Printf("failed to write settings: %v", err)
	} else {
		fmt.Printf("\nBest settings saved to: %s (use with -settings)\n", outPath)
	}
}
