package content

import "finitefield.org/staking-web/internal/markdown"

// BuildTOC nests headings by level. Depth 1 is the shallowest level present;
// a heading that skips levels nests under the closest shallower heading.
func BuildTOC(headings []markdown.Heading) []TOCItem {
	if len(headings) == 0 {
		return nil
	}
	minLevel := headings[0].Level
	for _, h := range headings {
		if h.Level < minLevel {
			minLevel = h.Level
		}
	}

	var root []TOCItem
	// stack holds the open branch, shallowest first
	type frame struct {
		depth int
		items *[]TOCItem
	}
	stack := []frame{{depth: 0, items: &root}}
	for _, h := range headings {
		item := TOCItem{URL: "#" + h.ID, Title: h.Text, Depth: h.Level - minLevel + 1}
		for len(stack) > 1 && stack[len(stack)-1].depth >= item.Depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].items
		*parent = append(*parent, item)
		last := &(*parent)[len(*parent)-1]
		stack = append(stack, frame{depth: item.Depth, items: &last.Items})
	}
	return root
}

// Trim returns a copy of items without entries deeper than maxDepth. A
// non-positive maxDepth keeps everything.
func Trim(items []TOCItem, maxDepth int) []TOCItem {
	if maxDepth <= 0 || len(items) == 0 {
		return items
	}
	out := make([]TOCItem, 0, len(items))
	for _, it := range items {
		if it.Depth > maxDepth {
			continue
		}
		it.Items = Trim(it.Items, maxDepth)
		if len(it.Items) == 0 {
			it.Items = nil
		}
		out = append(out, it)
	}
	return out
}
