package roster

// Column names expected in the roster header. Matching is case-sensitive.
const (
	ColumnName  = "nombre"
	ColumnPhone = "telefono"
	ColumnGroup = "grupo"
)

// RequiredColumns lists the header names a roster must carry.
var RequiredColumns = []string{ColumnName, ColumnPhone, ColumnGroup}

// Row is one parsed CSV record keyed by header name.
// Columns missing from a short record are absent from the map.
type Row map[string]string

// Name returns the player's display name.
func (r Row) Name() string { return r[ColumnName] }

// Phone returns the player's phone identifier.
func (r Row) Phone() string { return r[ColumnPhone] }

// GroupKey returns the raw group label of the row.
func (r Row) GroupKey() string { return r[ColumnGroup] }

// Group is an ordered set of rows sharing the same group key.
type Group struct {
	Label string
	Rows  []Row
}

// DisplayLabel is the label shown to users; rows without a group key are
// gathered under a placeholder.
func (g Group) DisplayLabel() string {
	if g.Label == "" {
		return "(sin grupo)"
	}
	return g.Label
}

// Len returns the number of players in the group.
func (g Group) Len() int { return len(g.Rows) }
