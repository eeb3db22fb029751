package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"promptmaster-lite/quest"
)

var ErrQuestNotFound = errors.New("quest not found")

// SectorQuest pairs a quest with the sector it belongs to, for flattened
// listings.
type SectorQuest struct {
	Sector string      `json:"sector"`
	Quest  quest.Quest `json:"quest"`
}

// QuestCatalog holds the quest definitions grouped by sector key.
type QuestCatalog struct {
	mu      sync.RWMutex
	sectors map[string][]quest.Quest
	byID    map[string]quest.Quest
}

// NewQuestCatalog creates an empty catalog.
func NewQuestCatalog() *QuestCatalog {
	return &QuestCatalog{
		sectors: make(map[string][]quest.Quest),
		byID:    make(map[string]quest.Quest),
	}
}

// LoadFromFile loads quests from a JSON file keyed by sector.
func (c *QuestCatalog) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read quests file: %w", err)
	}
	return c.LoadFromJSON(data)
}

// LoadFromJSON loads quests from raw JSON bytes keyed by sector.
func (c *QuestCatalog) LoadFromJSON(data []byte) error {
	var grouped map[string][]quest.Quest
	if err := json.Unmarshal(data, &grouped); err != nil {
		return fmt.Errorf("parse quests JSON: %w", err)
	}
	c.RegisterSectors(grouped)
	return nil
}

// RegisterSectors merges quest groups into the catalog.
func (c *QuestCatalog) RegisterSectors(grouped map[string][]quest.Quest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for sector, quests := range grouped {
		for _, q := range quests {
			if q.ID == "" {
				continue
			}
			c.sectors[sector] = append(c.sectors[sector], q)
			c.byID[q.ID] = q
		}
	}
}

// Find returns the quest with the given ID.
func (c *QuestCatalog) Find(questID string) (quest.Quest, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.byID[questID]
	if !ok {
		return quest.Quest{}, fmt.Errorf("%w: %s", ErrQuestNotFound, questID)
	}
	return q, nil
}

// Sectors returns the sector keys in sorted order.
func (c *QuestCatalog) Sectors() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.sectors))
	for k := range c.sectors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BySector returns the quests of one sector.
func (c *QuestCatalog) BySector(sector string) []quest.Quest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]quest.Quest{}, c.sectors[sector]...)
}

// All returns every quest paired with its sector, ordered by sector key then
// catalog order.
func (c *QuestCatalog) All() []SectorQuest {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.sectors))
	for k := range c.sectors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []SectorQuest
	for _, k := range keys {
		for _, q := range c.sectors[k] {
			out = append(out, SectorQuest{Sector: k, Quest: q})
		}
	}
	return out
}

// Count returns the total number of quests.
func (c *QuestCatalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}
