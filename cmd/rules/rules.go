// Package rules implements the mapping-rule maintenance commands.
package rules

import (
	"fmt"

	"github.com/spf13/cobra"

	"moabook/cardsheet/cmd/root"
	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/store"
)

// Cmd represents the rules command group.
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage user-defined merchant-to-category mapping rules",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured mapping rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		for _, kind := range []models.TransactionKind{models.KindExpense, models.KindIncome} {
			for merchant, category := range s.Rules(kind) {
				fmt.Printf("%s\t%s\t%s\n", kind, merchant, category)
			}
		}
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <expense|income> <merchant> <category>",
	Short: "Pin a merchant to a category",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := models.TransactionKind(args[0])
		if kind != models.KindExpense && kind != models.KindIncome {
			return fmt.Errorf("unknown transaction kind: %s", args[0])
		}
		if !models.IsValidCategory(kind, args[2]) {
			return fmt.Errorf("unknown %s category: %s", kind, args[2])
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		s.Update(kind, args[1], args[2])
		return s.Save()
	},
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(setCmd)
}

func openStore() (*store.RuleStore, error) {
	s := store.NewRuleStore(root.Cfg.Rules.ExpenseFile, root.Cfg.Rules.IncomeFile, root.Log)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}
