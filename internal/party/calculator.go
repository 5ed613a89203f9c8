package party

import "fmt"

const binaryWidth = 5

type andCalculator struct{}

// New creates a Calculator that folds selected values with bitwise AND.
func New() Calculator {
	return andCalculator{}
}

func (andCalculator) Compute(catalog []Item, indices []int) Result {
	return Compute(catalog, indices)
}

// Compute maps indices onto catalog items and derives the party code.
// Every index must satisfy 0 <= index < len(catalog); callers filter input
// with ParseSelection or FilterIndices first.
func Compute(catalog []Item, indices []int) Result {
	selected := make([]SelectedItem, 0, len(indices))
	for _, idx := range indices {
		item := catalog[idx]
		selected = append(selected, SelectedItem{Item: item, Binary: Binary(item.Value)})
	}

	base := 0
	intermediate := []int{}
	for i, item := range selected {
		if i == 0 {
			base = item.Value
			continue
		}
		base &= item.Value
		intermediate = append(intermediate, base)
	}

	final, adj, message := Adjust(base)

	return Result{
		SelectedItems:       selected,
		IntermediateResults: intermediate,
		BaseCode:            base,
		FinalCode:           final,
		Adjustment:          adj,
		Message:             message,
	}
}

// Binary formats value in base 2, left-padded with zeros to five digits.
// Wider values are never truncated.
func Binary(value int) string {
	return fmt.Sprintf("%0*b", binaryWidth, value)
}

// Steps pairs every intermediate result with the operands that produced it.
func (r Result) Steps() []Step {
	if len(r.SelectedItems) < 2 {
		return []Step{}
	}

	steps := make([]Step, 0, len(r.IntermediateResults))
	left := r.SelectedItems[0].Value
	for i, res := range r.IntermediateResults {
		steps = append(steps, Step{
			Left:   left,
			Right:  r.SelectedItems[i+1].Value,
			Result: res,
		})
		left = res
	}
	return steps
}

// ItemNames returns the selected item names in selection order.
func (r Result) ItemNames() []string {
	names := make([]string, 0, len(r.SelectedItems))
	for _, item := range r.SelectedItems {
		names = append(names, item.Name)
	}
	return names
}

// AdjustmentLine renders the adjustment applied to the base code.
func (r Result) AdjustmentLine() string {
	return r.Adjustment.Describe(r.BaseCode, r.FinalCode)
}

func (s Step) String() string {
	return fmt.Sprintf("%d & %d = %d", s.Left, s.Right, s.Result)
}
