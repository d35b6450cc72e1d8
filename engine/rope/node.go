package rope

import "strings"

// Tree structure constants.
const (
	// MinChildren is the minimum children per internal node (except root).
	MinChildren = 4

	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// node is a node in the rope B+ tree.
// Leaf nodes (height == 0) hold text chunks; internal nodes hold child
// references with per-child summaries for seeking.
type node struct {
	height  uint8
	summary Summary

	// Internal node fields (height > 0)
	children       []*node
	childSummaries []Summary

	// Leaf node fields (height == 0)
	chunks []Chunk
}

func newLeafNode() *node {
	return &node{
		height: 0,
		chunks: make([]Chunk, 0, MaxChunksPerLeaf),
	}
}

func newLeafNodeWithChunks(chunks []Chunk) *node {
	n := &node{
		height: 0,
		chunks: chunks,
	}
	n.recomputeSummary()
	return n
}

func newInternalNode(children []*node) *node {
	if len(children) == 0 {
		return newLeafNode()
	}

	height := children[0].height + 1
	summaries := make([]Summary, len(children))
	var total Summary

	for i, child := range children {
		summaries[i] = child.summary
		total = total.Add(child.summary)
	}

	return &node{
		height:         height,
		summary:        total,
		children:       children,
		childSummaries: summaries,
	}
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

// chars returns the character length of text in this subtree.
func (n *node) chars() int {
	return n.summary.Chars
}

func (n *node) recomputeSummary() {
	n.summary = Summary{}
	if n.isLeaf() {
		for _, chunk := range n.chunks {
			n.summary = n.summary.Add(chunk.Summary())
		}
		return
	}
	n.childSummaries = make([]Summary, len(n.children))
	for i, child := range n.children {
		n.childSummaries[i] = child.summary
		n.summary = n.summary.Add(child.summary)
	}
}

func (n *node) clone() *node {
	if n.isLeaf() {
		chunks := make([]Chunk, len(n.chunks))
		copy(chunks, n.chunks)
		return &node{
			height:  0,
			summary: n.summary,
			chunks:  chunks,
		}
	}

	children := make([]*node, len(n.children))
	copy(children, n.children)
	summaries := make([]Summary, len(n.childSummaries))
	copy(summaries, n.childSummaries)

	return &node{
		height:         n.height,
		summary:        n.summary,
		children:       children,
		childSummaries: summaries,
	}
}

// appendTo appends all text in this subtree to the builder.
func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.String())
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends text in the character range [start, end) to the builder.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.isLeaf() {
		offset := 0
		for _, chunk := range n.chunks {
			chunkEnd := offset + chunk.Chars()

			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}

			sliceStart := 0
			if start > offset {
				sliceStart = start - offset
			}
			sliceEnd := chunk.Chars()
			if end < chunkEnd {
				sliceEnd = end - offset
			}

			sb.WriteString(chunk.slice(sliceStart, sliceEnd))
			offset = chunkEnd
		}
		return
	}

	offset := 0
	for i, child := range n.children {
		childEnd := offset + n.childSummaries[i].Chars

		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := 0
		if start > offset {
			childStart = start - offset
		}
		childEndAdj := n.childSummaries[i].Chars
		if end < childEnd {
			childEndAdj = end - offset
		}

		child.appendRange(sb, childStart, childEndAdj)
		offset = childEnd
	}
}

// runeAt returns the character at the given character offset.
func (n *node) runeAt(offset int) (rune, bool) {
	if offset < 0 || offset >= n.chars() {
		return 0, false
	}

	for !n.isLeaf() {
		idx, childOffset := n.findChildByChar(offset)
		n = n.children[idx]
		offset = childOffset
	}

	for _, chunk := range n.chunks {
		if offset < chunk.Chars() {
			b := byteIndexOfChar(chunk.data, offset)
			for _, r := range chunk.data[b:] {
				return r, true
			}
		}
		offset -= chunk.Chars()
	}
	return 0, false
}

// split splits the node at the given character offset.
func (n *node) split(offset int) (*node, *node) {
	if offset <= 0 {
		return newLeafNode(), n.clone()
	}
	if offset >= n.chars() {
		return n.clone(), newLeafNode()
	}

	if n.isLeaf() {
		return n.splitLeaf(offset)
	}
	return n.splitInternal(offset)
}

func (n *node) splitLeaf(offset int) (*node, *node) {
	var leftChunks, rightChunks []Chunk
	currentOffset := 0

	for _, chunk := range n.chunks {
		chunkChars := chunk.Chars()

		switch {
		case currentOffset+chunkChars <= offset:
			leftChunks = append(leftChunks, chunk)
		case currentOffset >= offset:
			rightChunks = append(rightChunks, chunk)
		default:
			left, right := chunk.Split(offset - currentOffset)
			if !left.IsEmpty() {
				leftChunks = append(leftChunks, left)
			}
			if !right.IsEmpty() {
				rightChunks = append(rightChunks, right)
			}
		}
		currentOffset += chunkChars
	}

	return newLeafNodeWithChunks(leftChunks), newLeafNodeWithChunks(rightChunks)
}

func (n *node) splitInternal(offset int) (*node, *node) {
	var leftChildren, rightChildren []*node
	currentOffset := 0

	for i, child := range n.children {
		childChars := n.childSummaries[i].Chars

		switch {
		case currentOffset+childChars <= offset:
			leftChildren = append(leftChildren, child)
		case currentOffset >= offset:
			rightChildren = append(rightChildren, child)
		default:
			leftChild, rightChild := child.split(offset - currentOffset)
			if leftChild.chars() > 0 {
				leftChildren = append(leftChildren, leftChild)
			}
			if rightChild.chars() > 0 {
				rightChildren = append(rightChildren, rightChild)
			}
		}
		currentOffset += childChars
	}

	return buildNodeFromChildren(leftChildren), buildNodeFromChildren(rightChildren)
}

// buildNodeFromChildren creates a balanced tree from a list of child nodes.
func buildNodeFromChildren(children []*node) *node {
	if len(children) == 0 {
		return newLeafNode()
	}
	if len(children) == 1 {
		return children[0]
	}
	if len(children) <= MaxChildren {
		return newInternalNode(children)
	}

	var parents []*node
	for i := 0; i < len(children); i += MaxChildren {
		end := i + MaxChildren
		if end > len(children) {
			end = len(children)
		}
		parents = append(parents, newInternalNode(children[i:end]))
	}

	return buildNodeFromChildren(parents)
}

// concat concatenates two nodes.
func concat(left, right *node) *node {
	if left == nil || left.chars() == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.chars() == 0 {
		return left
	}

	if left.isLeaf() && right.isLeaf() {
		return concatLeaves(left, right)
	}

	// Bring to same height by wrapping the shorter one.
	for left.height < right.height {
		left = newInternalNode([]*node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*node{right})
	}

	return mergeNodes(left, right)
}

func concatLeaves(left, right *node) *node {
	totalChunks := len(left.chunks) + len(right.chunks)

	if totalChunks <= MaxChunksPerLeaf {
		chunks := make([]Chunk, 0, totalChunks)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeafNodeWithChunks(chunks)
	}

	return newInternalNode([]*node{left.clone(), right.clone()})
}

func mergeNodes(left, right *node) *node {
	if left.isLeaf() {
		return concatLeaves(left, right)
	}

	allChildren := make([]*node, 0, len(left.children)+len(right.children))
	allChildren = append(allChildren, left.children...)
	allChildren = append(allChildren, right.children...)

	if len(allChildren) <= MaxChildren {
		return newInternalNode(allChildren)
	}
	return buildNodeFromChildren(allChildren)
}

// findChildByChar finds the child containing the given character offset.
// Returns the child index and the offset within that child.
func (n *node) findChildByChar(offset int) (int, int) {
	if n.isLeaf() {
		return -1, 0
	}

	currentOffset := 0
	for i, summary := range n.childSummaries {
		if currentOffset+summary.Chars > offset {
			return i, offset - currentOffset
		}
		currentOffset += summary.Chars
	}

	lastIdx := len(n.children) - 1
	return lastIdx, offset - (n.summary.Chars - n.childSummaries[lastIdx].Chars)
}

// charOffsetOfNewline returns the character offset of the nth newline
// (1-indexed) in this subtree, or -1 if the subtree holds fewer newlines.
func (n *node) charOffsetOfNewline(nth int) int {
	if nth <= 0 || nth > n.summary.Newlines {
		return -1
	}

	if n.isLeaf() {
		offset := 0
		for _, chunk := range n.chunks {
			if nth <= chunk.summary.Newlines {
				for i, r := range chunk.data {
					if r == '\n' {
						nth--
						if nth == 0 {
							return offset + charIndexOfByte(chunk.data, i)
						}
					}
				}
			}
			nth -= chunk.summary.Newlines
			offset += chunk.Chars()
		}
		return -1
	}

	offset := 0
	for i, child := range n.children {
		if nth <= n.childSummaries[i].Newlines {
			return offset + child.charOffsetOfNewline(nth)
		}
		nth -= n.childSummaries[i].Newlines
		offset += n.childSummaries[i].Chars
	}
	return -1
}

// newlinesBefore counts the newline characters in [0, offset).
func (n *node) newlinesBefore(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= n.chars() {
		return n.summary.Newlines
	}

	if n.isLeaf() {
		count := 0
		for _, chunk := range n.chunks {
			if offset <= 0 {
				break
			}
			if offset >= chunk.Chars() {
				count += chunk.summary.Newlines
				offset -= chunk.Chars()
				continue
			}
			b := byteIndexOfChar(chunk.data, offset)
			count += strings.Count(chunk.data[:b], "\n")
			offset = 0
		}
		return count
	}

	count := 0
	for i, child := range n.children {
		if offset <= 0 {
			break
		}
		childChars := n.childSummaries[i].Chars
		if offset >= childChars {
			count += n.childSummaries[i].Newlines
			offset -= childChars
			continue
		}
		count += child.newlinesBefore(offset)
		offset = 0
	}
	return count
}
