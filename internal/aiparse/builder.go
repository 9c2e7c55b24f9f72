package aiparse

import "sort"

// The model numbers action steps and products itself (ACTION_STEP_3_TITLE may
// arrive before ACTION_STEP_1_TITLE, or step 2 may exist without step 1), so
// entries are collected in an index-keyed map and only flattened to a dense,
// ordered slice once input ends. Entries whose identifying field never showed
// up are dropped at that point.

type stepBuilder struct {
	entries map[int]*ActionStep
}

func newStepBuilder() *stepBuilder {
	return &stepBuilder{entries: make(map[int]*ActionStep)}
}

func (b *stepBuilder) set(index int, field, value string) {
	entry, ok := b.entries[index]
	if !ok {
		entry = &ActionStep{}
		b.entries[index] = entry
	}
	switch field {
	case "TITLE":
		entry.Title = value
	case "PRIORITY":
		entry.Priority = value
	case "TAG":
		entry.Tag = value
	case "DESC":
		entry.Description = value
	}
}

func (b *stepBuilder) finalize() []ActionStep {
	indices := make([]int, 0, len(b.entries))
	for index := range b.entries {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	steps := make([]ActionStep, 0, len(indices))
	for _, index := range indices {
		if b.entries[index].Title == "" {
			continue
		}
		steps = append(steps, *b.entries[index])
	}
	return steps
}

type productBuilder struct {
	entries map[int]*Product
}

func newProductBuilder() *productBuilder {
	return &productBuilder{entries: make(map[int]*Product)}
}

func (b *productBuilder) set(index int, field, value string) {
	entry, ok := b.entries[index]
	if !ok {
		entry = &Product{}
		b.entries[index] = entry
	}
	switch field {
	case "NAME":
		entry.Name = value
	case "TYPE":
		entry.Type = value
	case "DESC":
		entry.Description = value
	}
}

func (b *productBuilder) finalize() []Product {
	indices := make([]int, 0, len(b.entries))
	for index := range b.entries {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	products := make([]Product, 0, len(indices))
	for _, index := range indices {
		if b.entries[index].Name == "" {
			continue
		}
		products = append(products, *b.entries[index])
	}
	return products
}
