package layout

// BatchKey identifies the texture and variant shared by a batch.
type BatchKey struct {
	Font    string
	Variant string
}

// Batch is a run of instances drawn with one atlas texture.
type Batch struct {
	Key       BatchKey
	Instances []GlyphInstance
}

// Batcher groups glyph instances by font and variant so each group can be
// drawn with a single instanced call. Batches keep the order in which their
// key was first added; instances inside a batch keep insertion order.
//
// The variant is part of the key as given, so "Bold" and "bold" form two
// batches even though they resolve to the same glyph table.
//
// Batcher is NOT safe for concurrent use.
type Batcher struct {
	index   map[BatchKey]int
	batches []Batch
}

// NewBatcher creates an empty batcher.
func NewBatcher() *Batcher {
	return &Batcher{index: make(map[BatchKey]int)}
}

// Add appends instances to the batch of (fontName, variantName).
// Empty input does not create a batch.
func (b *Batcher) Add(fontName, variantName string, instances []GlyphInstance) {
	if len(instances) == 0 {
		return
	}
	if b.index == nil {
		b.index = make(map[BatchKey]int)
	}
	key := BatchKey{Font: fontName, Variant: variantName}
	i, ok := b.index[key]
	if !ok {
		i = len(b.batches)
		b.index[key] = i
		if i < cap(b.batches) {
			// Reuse a batch truncated by Reset.
			b.batches = b.batches[:i+1]
			b.batches[i].Key = key
		} else {
			b.batches = append(b.batches, Batch{Key: key})
		}
	}
	b.batches[i].Instances = append(b.batches[i].Instances, instances...)
}

// Batches returns the accumulated batches. The slice is owned by the
// batcher until the next Reset.
func (b *Batcher) Batches() []Batch {
	return b.batches
}

// Len returns the total number of instances across all batches.
func (b *Batcher) Len() int {
	n := 0
	for i := range b.batches {
		n += len(b.batches[i].Instances)
	}
	return n
}

// Reset clears all batches, keeping allocated storage for reuse.
func (b *Batcher) Reset() {
	clear(b.index)
	for i := range b.batches {
		b.batches[i].Instances = b.batches[i].Instances[:0]
	}
	b.batches = b.batches[:0]
}
