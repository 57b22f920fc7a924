package ratelimit

import "path"

// MatchRule returns the first rule whose method and pattern match the request, or nil.
func MatchRule(requestPath, method string, rules []Rule) *Rule {
	for i := range rules {
		rule := &rules[i]
		if rule.Method != method {
			continue
		}
		if ok, err := path.Match(rule.Pattern, requestPath); err == nil && ok {
			return rule
		}
	}
	return nil
}
