package source

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// StaticDirectory is a fixed set of peer nodes.
type StaticDirectory struct {
	nodes []model.Node
}

// NewStaticDirectory validates nodes and stores them ordered by id.
func NewStaticDirectory(nodes []model.Node) (*StaticDirectory, error) {
	if len(nodes) == 0 {
		return nil, errors.New("at least one node is required")
	}
	seen := make(map[int64]struct{}, len(nodes))
	out := make([]model.Node, 0, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n.ID]; ok {
			return nil, fmt.Errorf("duplicate node id %d", n.ID)
		}
		if _, err := url.ParseRequestURI(n.URL); err != nil {
			return nil, fmt.Errorf("node %d url: %w", n.ID, err)
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return &StaticDirectory{nodes: out}, nil
}

// ParseNodes parses ID=URL entries, one per node.
func ParseNodes(entries []string) ([]model.Node, error) {
	nodes := make([]model.Node, 0, len(entries))
	for _, entry := range entries {
		id, rawURL, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("node %q: expected ID=URL", entry)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("node %q: invalid id", entry)
		}
		nodes = append(nodes, model.Node{ID: n, URL: strings.TrimSpace(rawURL)})
	}
	return nodes, nil
}

// Nodes returns a snapshot of the directory. Callers may reorder it freely.
func (d *StaticDirectory) Nodes() []model.Node {
	out := make([]model.Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}
