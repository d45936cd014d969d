package engagement

import (
	"fmt"
	"sort"

	"github.com/gosimple/slug"
)

// ActionCheckin is the reserved kind handled by the check-in rules.
const ActionCheckin = "checkin"

// ActionRule configures how one action kind is rewarded.
type ActionRule struct {
	Kind ActionKind
	// Delta is the nominal points credited per award.
	Delta Points
	// DailyCap is the most points creditable per user per day; 0 means uncapped.
	DailyCap Points
	// TargetScoped kinds credit at most once per (user, kind, target).
	TargetScoped bool
	// Interaction kinds refresh LastActiveDate and thaw frozen accounts.
	Interaction bool
}

// HasDailyCap reports whether the rule limits daily credit.
func (rule ActionRule) HasDailyCap() bool {
	return rule.DailyCap > 0
}

// DiscountRule unlocks a one-shot discount once TotalEarned reaches Threshold.
type DiscountRule struct {
	ID        DiscountID
	Threshold Points
}

// RuleTableConfig is the raw input of NewRuleTable.
type RuleTableConfig struct {
	Actions                 []ActionRule
	PostUnlockThreshold     Points
	FreezeAfterDays         int
	ZombieCheckinWindowDays int
	Discounts               []DiscountRule
}

// RuleTable is the immutable award configuration shared by all callers.
type RuleTable struct {
	rules                   map[ActionKind]ActionRule
	postUnlockThreshold     Points
	freezeAfterDays         int
	zombieCheckinWindowDays int
	discounts               []DiscountRule
}

// NewRuleTable validates config and returns a read-only rule table.
func NewRuleTable(config RuleTableConfig) (RuleTable, error) {
	if len(config.Actions) == 0 {
		return RuleTable{}, fmt.Errorf("%w: no action rules", ErrInvalidRuleTable)
	}
	if config.PostUnlockThreshold < 0 {
		return RuleTable{}, fmt.Errorf("%w: post unlock threshold must not be negative", ErrInvalidRuleTable)
	}
	if config.FreezeAfterDays <= 0 {
		return RuleTable{}, fmt.Errorf("%w: freeze after days must be positive", ErrInvalidRuleTable)
	}
	if config.ZombieCheckinWindowDays <= 0 {
		return RuleTable{}, fmt.Errorf("%w: zombie check-in window must be positive", ErrInvalidRuleTable)
	}
	rules := make(map[ActionKind]ActionRule, len(config.Actions))
	for _, rule := range config.Actions {
		if rule.Kind.value == "" {
			return RuleTable{}, fmt.Errorf("%w: action rule without kind", ErrInvalidRuleTable)
		}
		if _, exists := rules[rule.Kind]; exists {
			return RuleTable{}, fmt.Errorf("%w: duplicate action kind %q", ErrInvalidRuleTable, rule.Kind.value)
		}
		if rule.DailyCap < 0 {
			return RuleTable{}, fmt.Errorf("%w: negative daily cap for %q", ErrInvalidRuleTable, rule.Kind.value)
		}
		if rule.Kind.value == ActionCheckin {
			if rule.TargetScoped {
				return RuleTable{}, fmt.Errorf("%w: %q cannot be target scoped", ErrInvalidRuleTable, ActionCheckin)
			}
			if rule.Interaction {
				return RuleTable{}, fmt.Errorf("%w: %q cannot count as an interaction", ErrInvalidRuleTable, ActionCheckin)
			}
		}
		rules[rule.Kind] = rule
	}
	if _, ok := rules[ActionKind{value: ActionCheckin}]; !ok {
		return RuleTable{}, fmt.Errorf("%w: missing %q action rule", ErrInvalidRuleTable, ActionCheckin)
	}
	discounts := make([]DiscountRule, 0, len(config.Discounts))
	seen := make(map[DiscountID]struct{}, len(config.Discounts))
	for _, discount := range config.Discounts {
		normalized := slug.Make(discount.ID.value)
		if normalized == "" {
			return RuleTable{}, fmt.Errorf("%w: discount id %q", ErrInvalidRuleTable, discount.ID.value)
		}
		if discount.Threshold <= 0 {
			return RuleTable{}, fmt.Errorf("%w: discount %q threshold must be positive", ErrInvalidRuleTable, normalized)
		}
		id := DiscountID{value: normalized}
		if _, exists := seen[id]; exists {
			return RuleTable{}, fmt.Errorf("%w: duplicate discount %q", ErrInvalidRuleTable, normalized)
		}
		seen[id] = struct{}{}
		discounts = append(discounts, DiscountRule{ID: id, Threshold: discount.Threshold})
	}
	sort.SliceStable(discounts, func(left, right int) bool {
		return discounts[left].Threshold < discounts[right].Threshold
	})
	return RuleTable{
		rules:                   rules,
		postUnlockThreshold:     config.PostUnlockThreshold,
		freezeAfterDays:         config.FreezeAfterDays,
		zombieCheckinWindowDays: config.ZombieCheckinWindowDays,
		discounts:               discounts,
	}, nil
}

// DefaultRuleTableConfig returns the built-in rule values. Deployments override
// them through a rules file.
func DefaultRuleTableConfig() RuleTableConfig {
	return RuleTableConfig{
		Actions: []ActionRule{
			{Kind: ActionKind{value: ActionCheckin}, Delta: 2},
			{Kind: ActionKind{value: "view_post"}, Delta: 1, DailyCap: 10, TargetScoped: true, Interaction: true},
			{Kind: ActionKind{value: "read_article"}, Delta: 2, DailyCap: 20, TargetScoped: true, Interaction: true},
			{Kind: ActionKind{value: "like_post"}, Delta: 1, DailyCap: 10, TargetScoped: true, Interaction: true},
			{Kind: ActionKind{value: "create_post"}, Delta: 5, DailyCap: 25, Interaction: true},
			{Kind: ActionKind{value: "create_comment"}, Delta: 2, DailyCap: 20, Interaction: true},
		},
		PostUnlockThreshold:     20,
		FreezeAfterDays:         7,
		ZombieCheckinWindowDays: 3,
		Discounts: []DiscountRule{
			{ID: DiscountID{value: "discount-500"}, Threshold: 500},
			{ID: DiscountID{value: "discount-2000"}, Threshold: 2000},
		},
	}
}

// DefaultRuleTable returns the validated built-in rule table.
func DefaultRuleTable() RuleTable {
	table, err := NewRuleTable(DefaultRuleTableConfig())
	if err != nil {
		panic(WrapError(errorOperationService, errorSubjectRules, "default", err))
	}
	return table
}

// Rule returns the rule configured for kind.
func (table RuleTable) Rule(kind ActionKind) (ActionRule, bool) {
	rule, ok := table.rules[kind]
	return rule, ok
}

// Kinds lists configured action kinds in lexical order.
func (table RuleTable) Kinds() []ActionKind {
	kinds := make([]ActionKind, 0, len(table.rules))
	for kind := range table.rules {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(left, right int) bool { return kinds[left].value < kinds[right].value })
	return kinds
}

// PostUnlockThreshold returns the available points needed to post.
func (table RuleTable) PostUnlockThreshold() Points {
	return table.postUnlockThreshold
}

// FreezeAfterDays returns the inactivity that freezes an account.
func (table RuleTable) FreezeAfterDays() int {
	return table.freezeAfterDays
}

// ZombieCheckinWindowDays returns the inactivity after which check-ins are unrewarded.
func (table RuleTable) ZombieCheckinWindowDays() int {
	return table.zombieCheckinWindowDays
}

// Discounts returns the discount rules ordered by threshold.
func (table RuleTable) Discounts() []DiscountRule {
	return append([]DiscountRule(nil), table.discounts...)
}

// Discount returns the rule for id, matching ids the same way the table normalized them.
func (table RuleTable) Discount(id DiscountID) (DiscountRule, bool) {
	normalized := DiscountID{value: slug.Make(id.value)}
	for _, discount := range table.discounts {
		if discount.ID == normalized {
			return discount, true
		}
	}
	return DiscountRule{}, false
}

// IsZero reports whether the table was never built.
func (table RuleTable) IsZero() bool {
	return table.rules == nil
}
