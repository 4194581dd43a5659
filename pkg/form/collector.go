package form

// Collector flattens a tree's violations into user-facing messages.
type Collector struct {
	messages Messages
}

// NewCollector creates a collector over messages. A nil table uses
// DefaultMessages.
func NewCollector(messages Messages) *Collector {
	if messages == nil {
		messages = DefaultMessages()
	}
	return &Collector{messages: messages}
}

// Collect returns one message per violation in tree order. Fields are labelled
// with their name in the parent group; fields held directly by a collection
// use the collection's name. An empty result means no violations; the tree may
// still be pending.
func (c *Collector) Collect(n Node) ([]string, error) {
	return c.collect(n, "", []string{})
}

func (c *Collector) collect(n Node, label string, out []string) ([]string, error) {
	switch n := n.(type) {
	case FieldNode:
		for _, v := range n.Violations() {
			msg, err := c.messages.Render(label, v.Rule)
			if err != nil {
				return nil, err
			}
			out = append(out, msg)
		}
	case *Group:
		for _, name := range n.names {
			var err error
			if out, err = c.collect(n.children[name], name, out); err != nil {
				return nil, err
			}
		}
	case *Collection:
		for _, item := range n.items {
			var err error
			if out, err = c.collect(item, label, out); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
