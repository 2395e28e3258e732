package expr

// Extract classifies a decoded condition map as flat (a rule list) or
// grouped (nested blocks) and returns the normalized Node tree.
//
// Grouped form wins when both keys are present: the editor writes either
// shape, never both, so a map carrying blocks is treated as grouped. An input
// with neither key (including nil and {}) degenerates to an empty all-RuleSet,
// which compiles to the empty string.
//
// Malformed entries are dropped silently at every level: a blocks entry whose
// type is neither "block" nor "group", or that lacks the sub-key its type
// requires, contributes nothing.
func Extract(cond map[string]any) Node {
	logic := ParseLogic(stringField(cond, "logic"))

	if blocks, ok := cond["blocks"].([]any); ok {
		return Group{Logic: logic, Children: extractBlocks(blocks)}
	}
	if rules, ok := cond["rules"].([]any); ok {
		return RuleSet{Logic: logic, Rules: extractRules(rules)}
	}
	return RuleSet{Logic: logic}
}

// extractBlocks walks a blocks list recursively. Blocks contribute RuleSets;
// groups contribute Groups with their own extracted children.
func extractBlocks(blocks []any) []Node {
	var nodes []Node
	for _, entry := range blocks {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		logic := ParseLogic(stringField(m, "logic"))

		switch stringField(m, "type") {
		case "block":
			rules, ok := m["rules"].([]any)
			if !ok {
				continue
			}
			nodes = append(nodes, RuleSet{Logic: logic, Rules: extractRules(rules)})
		case "group":
			children, ok := m["blocks"].([]any)
			if !ok {
				continue
			}
			nodes = append(nodes, Group{Logic: logic, Children: extractBlocks(children)})
		}
	}
	return nodes
}

// extractRules decodes a rules list, dropping non-map entries. Rules that
// decode but fail Valid() are kept here and filtered during compilation, so
// the compiler owns the single drop point for invalid rules.
func extractRules(rules []any) []Rule {
	var out []Rule
	for _, entry := range rules {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, RuleFromMap(m))
	}
	return out
}
