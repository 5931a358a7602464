package cascade

// Kind identifies an entity type participating in cascade deletion.
type Kind string

const (
	KindCompany    Kind = "company"
	KindUser       Kind = "user"
	KindTicketType Kind = "ticket_type"
	KindIncident   Kind = "incident"
	KindComment    Kind = "comment"
	KindAttachment Kind = "attachment"
)

// Action is what happens to child rows when their parent is deleted.
type Action int

const (
	// ActionDelete removes the child rows, recursing into their own children
	// first.
	ActionDelete Action = iota
	// ActionNullify clears the foreign key column; the child rows survive.
	ActionNullify
)

// Edge declares that rows of Child reference the parent through FK. Edges of
// a parent are processed in registration order.
type Edge struct {
	Child  Kind
	FK     string
	Action Action
}

// Graph is the fixed dependency graph of the schema. Deletion always walks
// leaves first; each step collects child IDs from the previous step so no
// entity is ever re-scanned by a different key.
type Graph struct {
	tables map[Kind]string
	edges  map[Kind][]Edge
}

// DefaultGraph returns the cascade graph for the incident schema:
//
//   - deleting a Company removes its incidents (transitively) and its users
//   - deleting a TicketType removes the incidents filed under it
//   - deleting a User clears assignee references, then removes the incidents
//     the user reported; order matters so an incident both assigned to and
//     reported by the user is handled by the reporter cascade
//   - deleting an Incident removes its comments (and their attachments) and
//     its direct attachments
func DefaultGraph() *Graph {
	g := &Graph{
		tables: map[Kind]string{
			KindCompany:    "companies",
			KindUser:       "users",
			KindTicketType: "ticket_types",
			KindIncident:   "incidents",
			KindComment:    "comments",
			KindAttachment: "attachments",
		},
		edges: map[Kind][]Edge{},
	}

	g.register(KindCompany,
		Edge{Child: KindIncident, FK: "company_id", Action: ActionDelete},
		Edge{Child: KindUser, FK: "company_id", Action: ActionDelete},
	)
	g.register(KindTicketType,
		Edge{Child: KindIncident, FK: "type_id", Action: ActionDelete},
	)
	g.register(KindUser,
		Edge{Child: KindIncident, FK: "assignee_id", Action: ActionNullify},
		Edge{Child: KindIncident, FK: "reporter_id", Action: ActionDelete},
	)
	g.register(KindIncident,
		Edge{Child: KindComment, FK: "incident_id", Action: ActionDelete},
		Edge{Child: KindAttachment, FK: "incident_id", Action: ActionDelete},
	)
	g.register(KindComment,
		Edge{Child: KindAttachment, FK: "comment_id", Action: ActionDelete},
	)

	return g
}

func (g *Graph) register(parent Kind, edges ...Edge) {
	g.edges[parent] = append(g.edges[parent], edges...)
}

// Table returns the storage table for a kind; ok is false for unknown kinds.
func (g *Graph) Table(kind Kind) (string, bool) {
	t, ok := g.tables[kind]
	return t, ok
}

// Edges returns the child edges of a kind in registration order.
func (g *Graph) Edges(kind Kind) []Edge {
	return g.edges[kind]
}
