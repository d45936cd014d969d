package engagement

import (
	"errors"
	"testing"
)

func TestDefaultRuleTable(test *testing.T) {
	test.Parallel()
	table := DefaultRuleTable()
	checkin, ok := table.Rule(ActionKind{value: ActionCheckin})
	if !ok || checkin.Delta != 2 || checkin.HasDailyCap() || checkin.Interaction {
		test.Fatalf("unexpected check-in rule %+v", checkin)
	}
	view, ok := table.Rule(ActionKind{value: "view_post"})
	if !ok || !view.TargetScoped || !view.Interaction || view.DailyCap != 10 {
		test.Fatalf("unexpected view rule %+v", view)
	}
	discounts := table.Discounts()
	if len(discounts) != 2 || discounts[0].Threshold != 500 || discounts[1].Threshold != 2000 {
		test.Fatalf("unexpected discounts %+v", discounts)
	}
	if table.ZombieCheckinWindowDays() != 3 || table.FreezeAfterDays() != 7 || table.PostUnlockThreshold() != 20 {
		test.Fatalf("unexpected global constants")
	}
	kinds := table.Kinds()
	if len(kinds) != 6 || kinds[0].String() != ActionCheckin {
		test.Fatalf("unexpected kinds %v", kinds)
	}
}

func TestNewRuleTableSortsDiscountsByThreshold(test *testing.T) {
	test.Parallel()
	config := DefaultRuleTableConfig()
	config.Discounts = []DiscountRule{
		{ID: DiscountID{value: "Gold Tier"}, Threshold: 2000},
		{ID: DiscountID{value: "silver"}, Threshold: 500},
	}
	table, err := NewRuleTable(config)
	if err != nil {
		test.Fatalf("rule table: %v", err)
	}
	discounts := table.Discounts()
	if discounts[0].ID.String() != "silver" || discounts[1].ID.String() != "gold-tier" {
		test.Fatalf("unexpected discount order %+v", discounts)
	}
	if _, ok := table.Discount(DiscountID{value: "GOLD tier"}); !ok {
		test.Fatalf("expected lookup by loose id")
	}
}

func TestNewRuleTableValidation(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name      string
		configure func(config *RuleTableConfig)
	}{
		{name: "no actions", configure: func(config *RuleTableConfig) { config.Actions = nil }},
		{name: "negative threshold", configure: func(config *RuleTableConfig) { config.PostUnlockThreshold = -1 }},
		{name: "zero freeze window", configure: func(config *RuleTableConfig) { config.FreezeAfterDays = 0 }},
		{name: "zero zombie window", configure: func(config *RuleTableConfig) { config.ZombieCheckinWindowDays = 0 }},
		{name: "empty kind", configure: func(config *RuleTableConfig) {
			config.Actions = append(config.Actions, ActionRule{Delta: 1})
		}},
		{name: "duplicate kind", configure: func(config *RuleTableConfig) {
			config.Actions = append(config.Actions, ActionRule{Kind: ActionKind{value: "view_post"}, Delta: 1})
		}},
		{name: "negative cap", configure: func(config *RuleTableConfig) { config.Actions[1].DailyCap = -1 }},
		{name: "missing check-in", configure: func(config *RuleTableConfig) { config.Actions = config.Actions[1:] }},
		{name: "target scoped check-in", configure: func(config *RuleTableConfig) { config.Actions[0].TargetScoped = true }},
		{name: "interaction check-in", configure: func(config *RuleTableConfig) { config.Actions[0].Interaction = true }},
		{name: "empty discount id", configure: func(config *RuleTableConfig) {
			config.Discounts = append(config.Discounts, DiscountRule{ID: DiscountID{value: "!!"}, Threshold: 10})
		}},
		{name: "zero discount threshold", configure: func(config *RuleTableConfig) { config.Discounts[0].Threshold = 0 }},
		{name: "duplicate discount", configure: func(config *RuleTableConfig) {
			config.Discounts = append(config.Discounts, DiscountRule{ID: DiscountID{value: "Discount 500"}, Threshold: 900})
		}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			config := DefaultRuleTableConfig()
			testCase.configure(&config)
			if _, err := NewRuleTable(config); !errors.Is(err, ErrInvalidRuleTable) {
				test.Fatalf("expected invalid rule table, got %v", err)
			}
		})
	}
}
