package batch

import (
	"context"

	"github.com/charmbracelet/log"
)

// ConvertFunc converts one input and returns the artifact path.
type ConvertFunc func(ctx context.Context, input string) (string, error)

// Summary reports the outcome of a batch run.
type Summary struct {
	Succeeded int
	Failed    int
	Outputs   []string
}

// Runner drives independent conversions over a queue of inputs. No state
// is shared between conversions beyond the convert function itself.
type Runner struct {
	Convert ConvertFunc
	Log     *log.Logger
}

// Run converts each input in order and returns a summary. Failures are
// logged and counted; the run continues with the next input.
func (r *Runner) Run(ctx context.Context, inputs []string) Summary {
	var summary Summary
	total := len(inputs)

	for i, input := range inputs {
		r.Log.Info("converting", "input", input, "n", i+1, "total", total)

		path, err := r.Convert(ctx, input)
		if err != nil {
			r.Log.Error("conversion failed", "input", input, "err", err)
			summary.Failed++
			continue
		}
		r.Log.Info("written", "path", path)
		summary.Succeeded++
		summary.Outputs = append(summary.Outputs, path)
	}
	return summary
}
