package catalog

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"slices"

	"github.com/eugenenazirov/party-planner/internal/party"
)

func TestNewDefaultReturnsFifteenItems(t *testing.T) {
	t.Parallel()

	c := NewDefault()

	got, err := c.Items()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 15 || c.Len() != 15 {
		t.Fatalf("expected 15 items, got %d (Len %d)", len(got), c.Len())
	}
	for pos, item := range got {
		if item.Index != pos {
			t.Fatalf("item %q has index %d at position %d", item.Name, item.Index, pos)
		}
	}
	if got[0].Name != "Cake" || got[0].Value != 20 {
		t.Fatalf("unexpected first item %+v", got[0])
	}
	if got[14].Name != "Cleaning Service" || got[14].Value != 11 {
		t.Fatalf("unexpected last item %+v", got[14])
	}

	// ensure mutation safety
	got[0].Value = 999
	again, err := c.Items()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again[0].Value != 20 {
		t.Fatalf("expected defensive copy, got %+v", again[0])
	}
}

func TestDefaultItemsIsCopy(t *testing.T) {
	t.Parallel()

	items := DefaultItems()
	items[1].Name = "changed"
	if !slices.Equal(DefaultItems(), defaultItems) {
		t.Fatalf("DefaultItems leaked internal slice")
	}
}

func TestNewMemoryCatalogRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	testCases := [][]party.Item{
		nil,
		{},
		{{Index: 1, Name: "Cake", Value: 1}},
		{{Index: 0, Name: "", Value: 1}},
		{{Index: 0, Name: "Cake", Value: -1}},
		{{Index: 0, Name: "Cake", Value: 1}, {Index: 0, Name: "DJ", Value: 3}},
	}

	for idx, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			if _, err := NewMemoryCatalog(tc); !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog for %v, got %v", tc, err)
			}
		})
	}
}

func TestNewMemoryCatalogCopiesInput(t *testing.T) {
	t.Parallel()

	input := []party.Item{{Index: 0, Name: "Cake", Value: 20}}
	c, err := NewMemoryCatalog(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	input[0].Value = 1

	got, _ := c.Items()
	if got[0].Value != 20 {
		t.Fatalf("catalog shares memory with caller input")
	}
}

func TestMemoryCatalogConcurrentReads(t *testing.T) {
	c := NewDefault()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := c.Items()
			if err != nil {
				t.Errorf("Items failed: %v", err)
				return
			}
			party.Compute(items, []int{0, 1, 2})
		}()
	}

	wg.Wait()
}
