package party

// Item is a single entry of the party catalog.
// Index mirrors the catalog position so display order survives reordering.
type Item struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// SelectedItem is an Item annotated with its binary representation.
type SelectedItem struct {
	Item
	Binary string `json:"binary"`
}

// Step is one fold step of the base code calculation: Left & Right = Result.
type Step struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Result int `json:"result"`
}

// Result is the outcome of a party code calculation.
type Result struct {
	SelectedItems       []SelectedItem
	IntermediateResults []int
	BaseCode            int
	FinalCode           int
	Adjustment          Adjustment
	Message             string
}

// Calculator describes the behaviour required from a party code calculator.
type Calculator interface {
	Compute(catalog []Item, indices []int) Result
}
