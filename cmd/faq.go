package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/vehicle-assistant-cli/internal/catalog"
)

func newFAQCmd(app *app) *cobra.Command {
	var withAnswers bool

	cmd := &cobra.Command{
		Use:   "faq",
		Short: "List the frequent and informative questions the assistant knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeFAQ(cmd.OutOrStdout(), catalog.Frequent(), app.catalog.Categories(), withAnswers)
		},
	}

	cmd.Flags().BoolVar(&withAnswers, "answers", false, "Include the answers of informative questions")

	return cmd
}

func writeFAQ(w io.Writer, frequent []catalog.FrequentGroup, categories []catalog.Category, withAnswers bool) error {
	if _, err := fmt.Fprintln(w, "Preguntas frecuentes"); err != nil {
		return err
	}
	for _, group := range frequent {
		if _, err := fmt.Fprintf(w, "\n%s\n", group.Title); err != nil {
			return err
		}
		for _, q := range group.Questions {
			if _, err := fmt.Fprintf(w, "  • %s\n", q); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, "\nPreguntas informativas"); err != nil {
		return err
	}
	for _, cat := range categories {
		if _, err := fmt.Fprintf(w, "\n%s\n", cat.Title); err != nil {
			return err
		}
		for _, qa := range cat.QAs {
			if _, err := fmt.Fprintf(w, "  • %s\n", qa.Question); err != nil {
				return err
			}
			if withAnswers {
				if _, err := fmt.Fprintf(w, "    %s\n", qa.Answer); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
