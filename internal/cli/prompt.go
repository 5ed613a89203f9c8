// Package cli implements the terminal front end: it lists the catalog, reads a
// selection and prints the party code breakdown.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/eugenenazirov/party-planner/internal/catalog"
	"github.com/eugenenazirov/party-planner/internal/party"
)

const promptText = "Enter item indices separated by commas (e.g., 0, 2): "

// Outcome messages printed when no calculation takes place.
const (
	MessageInvalidInput = "Invalid input. Please enter valid indices."
	MessageNoSelection  = "No valid indices selected."
)

// ErrNoSelection is returned by Run when nothing could be computed.
var ErrNoSelection = errors.New("no valid selection")

// Prompt drives a single interactive session.
type Prompt struct {
	calculator party.Calculator
	catalog    catalog.Catalog
	label      string
	logger     *zap.Logger

	in  io.Reader
	out io.Writer

	heading lipgloss.Style
	key     lipgloss.Style
	binary  lipgloss.Style
	message lipgloss.Style
}

// NewPrompt creates a Prompt reading from in and writing to out.
// Styles degrade to plain text when out is not a terminal.
func NewPrompt(calc party.Calculator, items catalog.Catalog, label string, logger *zap.Logger, in io.Reader, out io.Writer) *Prompt {
	renderer := lipgloss.NewRenderer(out)
	return &Prompt{
		calculator: calc,
		catalog:    items,
		label:      label,
		logger:     logger,
		in:         in,
		out:        out,
		heading:    renderer.NewStyle().Bold(true),
		key:        renderer.NewStyle().Bold(true),
		binary:     renderer.NewStyle().Foreground(lipgloss.Color("#2196F3")),
		message:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
	}
}

// Run lists the catalog, reads one line of input and prints the result.
// When preset is non-empty it is used instead of reading from the input.
func (p *Prompt) Run(preset string) (party.Result, error) {
	items, err := p.catalog.Items()
	if err != nil {
		return party.Result{}, fmt.Errorf("load catalog: %w", err)
	}

	p.printCatalog(items)

	raw := preset
	if raw == "" {
		fmt.Fprint(p.out, "\n"+promptText)
		raw, err = readLine(p.in)
		if err != nil {
			return party.Result{}, fmt.Errorf("read selection: %w", err)
		}
	}

	indices, err := party.ParseSelection(raw, len(items))
	if strings.TrimSpace(raw) == "" || errors.Is(err, party.ErrMalformedSelection) {
		p.logger.Debug("rejected selection", zap.String("input", raw), zap.Error(err))
		fmt.Fprintln(p.out, MessageInvalidInput)
		return party.Result{}, ErrNoSelection
	}
	if len(indices) == 0 {
		fmt.Fprintln(p.out, MessageNoSelection)
		return party.Result{}, ErrNoSelection
	}

	result := p.calculator.Compute(items, indices)
	p.printResult(result)
	return result, nil
}

func (p *Prompt) printCatalog(items []party.Item) {
	fmt.Fprintln(p.out, p.heading.Render(p.label+":"))
	fmt.Fprintln(p.out, p.heading.Render("Available Party Items:"))
	for _, item := range items {
		fmt.Fprintf(p.out, "%d: %s\n", item.Index, item.Name)
	}
}

func (p *Prompt) printResult(result party.Result) {
	fmt.Fprintf(p.out, "\n%s %s\n", p.key.Render("Selected Items:"), strings.Join(result.ItemNames(), ", "))
	for _, item := range result.SelectedItems {
		fmt.Fprintf(p.out, "  %s = %d = %s\n", item.Name, item.Value, p.binary.Render(item.Binary))
	}
	for _, step := range result.Steps() {
		fmt.Fprintf(p.out, "  %s\n", step)
	}
	fmt.Fprintf(p.out, "%s %d\n", p.key.Render("Base Party Code:"), result.BaseCode)
	fmt.Fprintf(p.out, "%s %s\n", p.key.Render("Adjusted Party Code:"), result.AdjustmentLine())
	fmt.Fprintf(p.out, "%s %d\n", p.key.Render("Final Party Code:"), result.FinalCode)
	fmt.Fprintf(p.out, "\n%s %s\n", p.key.Render("Message:"), p.message.Render(result.Message))
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
