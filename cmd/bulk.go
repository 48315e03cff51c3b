package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"time"

	"randgen/numgen"
	"randgen/utils"

	"github.com/alitto/pond"
	"github.com/dustin/go-humanize"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Generate a large batch of values into files",
	Run: func(cmd *cobra.Command, args []string) {
		err := runBulk()
		if err != nil {
			logger.Error("Failed", zap.Error(err))
			os.Exit(1)
		}
	},
}

type BulkFlags struct {
	Kind        string
	Min         float64
	Max         float64
	Count       int
	SplitLines  int
	Output      string
	Concurrency int

	// Derived Properties
	OutputDirectory string
}

var bulkFlags BulkFlags

func init() {
	rootCmd.AddCommand(bulkCmd)

	bulkFlags = BulkFlags{
		Kind:        "int",
		Min:         0,
		Max:         100,
		Count:       1000000,
		SplitLines:  100000,
		Output:      "./output",
		Concurrency: 8,
	}

	bulkCmd.Flags().StringVar(&bulkFlags.Kind, "kind", bulkFlags.Kind, "Type of number to generate (int or float)")
	bulkCmd.Flags().Float64Var(&bulkFlags.Min, "min", bulkFlags.Min, "Minimum value (inclusive)")
	bulkCmd.Flags().Float64Var(&bulkFlags.Max, "max", bulkFlags.Max, "Maximum value (inclusive)")
	bulkCmd.Flags().IntVarP(&bulkFlags.Count, "count", "n", bulkFlags.Count, "Total number of values to generate")
	bulkCmd.Flags().IntVar(&bulkFlags.SplitLines, "split-lines", bulkFlags.SplitLines, "Values per output file")
	bulkCmd.Flags().StringVarP(&bulkFlags.Output, "output", "o", bulkFlags.Output, "Output directory")
	bulkCmd.Flags().IntVar(&bulkFlags.Concurrency, "concurrency", bulkFlags.Concurrency, "")
}

type bulkTask struct {
	kind    numgen.Kind
	start   int
	end     int
	fileIdx int // only used in output file name
}

var pgTracker *utils.ProgressTracker

func runBulk() error {
	kind, err := numgen.ParseKind(bulkFlags.Kind)
	if err != nil {
		return err
	}
	if err := numgen.Check(kind, bulkFlags.Count, bulkFlags.Min, bulkFlags.Max); err != nil {
		return err
	}
	if bulkFlags.SplitLines < 1 {
		return fmt.Errorf("split-lines must be positive, got %d", bulkFlags.SplitLines)
	}

	bulkFlags.OutputDirectory = path.Join(bulkFlags.Output, fmt.Sprintf(
		"randgen_%s_%d_%d",
		kind,
		bulkFlags.Count,
		time.Now().UnixNano()))

	files := bulkFlags.Count / bulkFlags.SplitLines
	if bulkFlags.Count%bulkFlags.SplitLines != 0 {
		files++
	}

	if err := os.MkdirAll(bulkFlags.OutputDirectory, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", bulkFlags.OutputDirectory, err)
	}

	logger.Info("Start writing values",
		zap.Stringer("kind", kind),
		zap.Float64("min", bulkFlags.Min),
		zap.Float64("max", bulkFlags.Max),
		zap.Int("values-per-file", bulkFlags.SplitLines),
		zap.Int("files", files),
		zap.String("output-directory", bulkFlags.OutputDirectory),
		zap.String("total-values", humanize.Comma(int64(bulkFlags.Count))),
	)

	fileSizes := chunkSizes(bulkFlags.Count, bulkFlags.SplitLines)

	// Prepare progress
	pgTracker = utils.NewProgressTracker(fileSizes)

	// Prepare manifest file
	if err := writeManifestFile(kind, files); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	// Prepare data tasks
	pool := pond.New(bulkFlags.Concurrency, files)

	for fileIdx := 0; fileIdx < files; fileIdx++ {
		start := fileIdx * bulkFlags.SplitLines
		task := bulkTask{
			kind:    kind,
			start:   start,
			end:     start + fileSizes[fileIdx],
			fileIdx: fileIdx,
		}

		pool.Submit(task.run)
	}

	pool.StopAndWait()
	pgTracker.Wait()

	return nil
}

// chunkSizes splits count values into files of at most split values each.
func chunkSizes(count, split int) []int {
	sizes := make([]int, 0, count/split+1)
	for start := 0; start < count; start += split {
		end := start + split
		if end > count {
			end = count
		}
		sizes = append(sizes, end-start)
	}
	return sizes
}

func (t *bulkTask) run() {
	f, err := os.Create(path.Join(bulkFlags.OutputDirectory, fmt.Sprintf(
		"values.%06d.txt",
		t.fileIdx+1,
	)))

	if err != nil {
		logger.Error("Failed to create file",
			zap.Error(err),
			zap.Int("file-index", t.fileIdx))
		panic(err)
	}

	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	finished := 0

	for i := t.start; i < t.end; i++ {
		// Bounds were validated up front, so single draws cannot fail.
		switch t.kind {
		case numgen.KindInt:
			v, _ := numgen.Int(int64(bulkFlags.Min), int64(bulkFlags.Max))
			fmt.Fprintf(w, "%d\n", v)
		default:
			v, _ := numgen.Float(bulkFlags.Min, bulkFlags.Max)
			fmt.Fprintf(w, "%g\n", v)
		}

		finished++
		if i%1000 == 0 {
			pgTracker.AddFinished(t.fileIdx, finished)
			finished = 0
		}
	}

	pgTracker.AddFinished(t.fileIdx, finished)
}

func writeManifestFile(kind numgen.Kind, files int) error {
	cfg := map[string]any{
		"generator": map[string]any{
			"kind":  kind.String(),
			"min":   bulkFlags.Min,
			"max":   bulkFlags.Max,
			"count": bulkFlags.Count,
		},
		"layout": map[string]any{
			"lines-per-file": bulkFlags.SplitLines,
			"files":          files,
		},
	}

	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	filePath := path.Join(bulkFlags.OutputDirectory, "manifest.toml")
	return os.WriteFile(filePath, b, 0644)
}
