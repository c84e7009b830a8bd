package lint

import (
	"sort"
	"sync"

	"github.com/pgvet/pgvet/pkg/core"
)

// registry stores all registered rules keyed by ID.
var registry = struct {
	mu    sync.RWMutex
	rules map[string]RuleDef
}{
	rules: make(map[string]RuleDef),
}

// Register adds a rule to the registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.rules[rule.ID] = rule
}

// All returns all registered rules sorted by ID. The sorted order is the
// order in which the analyzer applies rules to a line, so check order is
// deterministic across runs.
func All() []RuleDef {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(registry.rules))
	for _, rule := range registry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})
	return rules
}

// ByID returns a rule by its ID.
func ByID(id string) (RuleDef, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	rule, ok := registry.rules[id]
	return rule, ok
}

// AllInfo returns metadata for all registered rules, sorted by ID.
func AllInfo() []core.RuleInfo {
	all := All()
	infos := make([]core.RuleInfo, 0, len(all))
	for _, rule := range all {
		infos = append(infos, rule.Info())
	}
	return infos
}
