package core

// PanelContent holds typed side panel data, extensible via PanelItem
type PanelContent struct {
	Title string
	Items []PanelItem
}

// PanelItem is implemented by all panel component types
type PanelItem interface {
	panelItem() // sealed marker
}

// PanelCard displays a titled group of key-value entries
type PanelCard struct {
	Title   string
	Entries []CardEntry
}

func (PanelCard) panelItem() {}

// PanelList displays selectable lines, Selected is -1 when nothing is chosen
type PanelList struct {
	Lines    []string
	Selected int
	Active   int
}

func (PanelList) panelItem() {}

// CardEntry is a single key-value pair within a card
type CardEntry struct {
	Key      string
	Value    string
	Selected bool
}

// Cards extracts all PanelCard items from content
func (c *PanelContent) Cards() []PanelCard {
	if c == nil {
		return nil
	}
	var cards []PanelCard
	for _, item := range c.Items {
		if card, ok := item.(PanelCard); ok {
			cards = append(cards, card)
		}
	}
	return cards
}
