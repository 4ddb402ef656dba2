package filter

import (
	"context"
	"sort"

	"github.com/harrison/tagsearch/internal/corpus"
	"github.com/harrison/tagsearch/internal/similarity"
	"github.com/harrison/tagsearch/internal/tags"
	"github.com/harrison/tagsearch/internal/workpool"
)

// TagCount is one row of the tag usage table.
type TagCount struct {
	Count int
	Key   string
}

// TagFiles lists the files carrying one tag.
type TagFiles struct {
	Tag   tags.Tag
	Files []string
}

// FilesMatching returns the paths of the documents whose tags match, in input
// order. Documents are evaluated in parallel, bounded by WithWorkers.
func (f *Filter) FilesMatching(docs []corpus.Document) []string {
	// The callback never fails and the context is never cancelled.
	keep, _ := workpool.Map(context.Background(), docs, f.workers, func(_ context.Context, d corpus.Document) (bool, error) {
		return f.Matches(d.Tags), nil
	})
	var out []string
	for i, ok := range keep {
		if ok {
			out = append(out, docs[i].Path)
		}
	}
	return out
}

// TagsMatching returns the union of the tags of every matching document.
func (f *Filter) TagsMatching(docs []corpus.Document) tags.Tagset {
	union := tags.NewTagset()
	for _, d := range docs {
		if f.Matches(d.Tags) {
			union.Union(d.Tags)
		}
	}
	return union
}

// Untagged returns the paths of documents without any tag, in input order.
// The query is not consulted.
func (f *Filter) Untagged(docs []corpus.Document) []string {
	var out []string
	for _, d := range docs {
		if d.Tags.Empty() {
			out = append(out, d.Path)
		}
	}
	return out
}

// SimilarTags looks for likely duplicates across the tags of all documents.
// The query is not consulted.
func (f *Filter) SimilarTags(docs []corpus.Document) []similarity.Issue {
	return similarity.Find(Vocabulary(docs).Sorted())
}

// CountOfTags counts, over all documents, how often each segment and each
// full hierarchical path occurs. The query is not consulted. Rows are sorted
// by count, highest first, then by key.
func (f *Filter) CountOfTags(docs []corpus.Document) []TagCount {
	counts := make(map[string]int)
	for _, d := range docs {
		for _, t := range d.Tags.Sorted() {
			for _, seg := range t {
				counts[seg]++
			}
			if len(t) > 1 {
				counts[t.String()]++
			}
		}
	}

	out := make([]TagCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, TagCount{Count: n, Key: k})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// FilesByTag groups the matching documents by tag. Tags are in canonical
// order and each file list keeps the input order.
func (f *Filter) FilesByTag(docs []corpus.Document) []TagFiles {
	byKey := make(map[string]*TagFiles)
	for _, d := range docs {
		if !f.Matches(d.Tags) {
			continue
		}
		for _, t := range d.Tags.Sorted() {
			key := t.String()
			tf, ok := byKey[key]
			if !ok {
				tf = &TagFiles{Tag: t}
				byKey[key] = tf
			}
			tf.Files = append(tf.Files, d.Path)
		}
	}

	out := make([]TagFiles, 0, len(byKey))
	for _, tf := range byKey {
		out = append(out, *tf)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Tag.Compare(out[j].Tag) < 0
	})
	return out
}

// Vocabulary returns the union of the tags of all documents.
func Vocabulary(docs []corpus.Document) tags.Tagset {
	union := tags.NewTagset()
	for _, d := range docs {
		union.Union(d.Tags)
	}
	return union
}
