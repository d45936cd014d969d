package config

import (
	"fmt"
	"strings"

	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/spf13/viper"
)

// Global constants are pointers so an explicit zero is kept apart from an absent key.
type ruleFile struct {
	PostUnlockThreshold     *int64             `mapstructure:"post_unlock_threshold"`
	FreezeAfterDays         *int               `mapstructure:"freeze_after_days"`
	ZombieCheckinWindowDays *int               `mapstructure:"zombie_checkin_window_days"`
	Actions                 []ruleFileAction   `mapstructure:"actions"`
	Discounts               []ruleFileDiscount `mapstructure:"discounts"`
}

type ruleFileAction struct {
	Kind         string `mapstructure:"kind"`
	Delta        int64  `mapstructure:"delta"`
	DailyCap     int64  `mapstructure:"daily_cap"`
	TargetScoped bool   `mapstructure:"target_scoped"`
	Interaction  bool   `mapstructure:"interaction"`
}

type ruleFileDiscount struct {
	ID        string `mapstructure:"id"`
	Threshold int64  `mapstructure:"threshold"`
}

// LoadRuleTable reads a YAML or JSON rule file. An empty path yields the built-in table.
// Global constants missing from the file keep their built-in values.
func LoadRuleTable(path string) (engagement.RuleTable, error) {
	if strings.TrimSpace(path) == "" {
		return engagement.DefaultRuleTable(), nil
	}
	reader := viper.New()
	reader.SetConfigFile(path)
	if err := reader.ReadInConfig(); err != nil {
		return engagement.RuleTable{}, fmt.Errorf("read rules %s: %w", path, err)
	}
	var file ruleFile
	if err := reader.Unmarshal(&file); err != nil {
		return engagement.RuleTable{}, fmt.Errorf("decode rules %s: %w", path, err)
	}
	tableConfig, err := file.toRuleTableConfig()
	if err != nil {
		return engagement.RuleTable{}, fmt.Errorf("rules %s: %w", path, err)
	}
	table, err := engagement.NewRuleTable(tableConfig)
	if err != nil {
		return engagement.RuleTable{}, fmt.Errorf("rules %s: %w", path, err)
	}
	return table, nil
}

func (file ruleFile) toRuleTableConfig() (engagement.RuleTableConfig, error) {
	tableConfig := engagement.DefaultRuleTableConfig()
	if file.PostUnlockThreshold != nil {
		tableConfig.PostUnlockThreshold = engagement.Points(*file.PostUnlockThreshold)
	}
	if file.FreezeAfterDays != nil {
		tableConfig.FreezeAfterDays = *file.FreezeAfterDays
	}
	if file.ZombieCheckinWindowDays != nil {
		tableConfig.ZombieCheckinWindowDays = *file.ZombieCheckinWindowDays
	}
	if len(file.Actions) > 0 {
		tableConfig.Actions = make([]engagement.ActionRule, 0, len(file.Actions))
		for _, action := range file.Actions {
			kind, err := engagement.NewActionKind(action.Kind)
			if err != nil {
				return engagement.RuleTableConfig{}, err
			}
			tableConfig.Actions = append(tableConfig.Actions, engagement.ActionRule{
				Kind:         kind,
				Delta:        engagement.Points(action.Delta),
				DailyCap:     engagement.Points(action.DailyCap),
				TargetScoped: action.TargetScoped,
				Interaction:  action.Interaction,
			})
		}
	}
	if len(file.Discounts) > 0 {
		tableConfig.Discounts = make([]engagement.DiscountRule, 0, len(file.Discounts))
		for _, discount := range file.Discounts {
			discountID, err := engagement.NewDiscountID(discount.ID)
			if err != nil {
				return engagement.RuleTableConfig{}, err
			}
			tableConfig.Discounts = append(tableConfig.Discounts, engagement.DiscountRule{
				ID:        discountID,
				Threshold: engagement.Points(discount.Threshold),
			})
		}
	}
	return tableConfig, nil
}
