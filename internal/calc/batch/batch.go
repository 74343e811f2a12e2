package batch

import (
	"fmt"

	baseshear "Seismo/internal/calc/baseshear"
)

type BatchInput struct {
	Items []baseshear.Input `json:"items"`
}

type BatchResult struct {
	Results []baseshear.Result `json:"results"`
}

// Calculate evaluates every item; the first invalid item aborts the whole
// batch with its position so the caller can fix the offending row.
func Calculate(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, fmt.Errorf("no items")
	}
	out := BatchResult{Results: make([]baseshear.Result, 0, len(in.Items))}
	for idx, item := range in.Items {
		res, err := baseshear.Calculate(item)
		if err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", idx, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
