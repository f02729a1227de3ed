package roster

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// GroupBy partitions rows by exact equality of the key column in a single
// pass. Groups appear in the order their key is first seen and keep the
// original row order. Labels are never sorted.
func GroupBy(rows []Row, key string) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, row := range rows {
		label := row[key]
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// Roster is a validated, grouped player list.
type Roster struct {
	Rows   []Row
	Groups []Group
}

// Load parses, validates and groups a roster CSV.
func Load(r io.Reader) (Roster, error) {
	t, err := ReadTable(r)
	if err != nil {
		return Roster{}, err
	}
	if err := t.Validate(RequiredColumns...); err != nil {
		return Roster{}, err
	}
	return Roster{Rows: t.Rows, Groups: GroupBy(t.Rows, ColumnGroup)}, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Roster{}, errors.WithStack(err)
	}
	defer f.Close()
	return Load(f)
}

// Find returns the group with the given label.
func Find(groups []Group, label string) (Group, bool) {
	for _, g := range groups {
		if g.Label == label {
			return g, true
		}
	}
	return Group{}, false
}

// Labels lists group labels in display order.
func Labels(groups []Group) []string {
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	return labels
}
