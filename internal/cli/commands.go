// Package cli implements the rentzila-e2e support commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rentzila/e2e/internal/apiclient"
	"github.com/rentzila/e2e/internal/fixtures"
)

// ErrBackcallNotFound is returned when the backend has no matching consultation request
var ErrBackcallNotFound = errors.New("backcall not found")

// RunBackcall looks up a consultation request and prints the outcome
func RunBackcall(ctx context.Context, finder apiclient.BackcallFinder, name, phone string, out io.Writer) error {
	if name == "" || phone == "" {
		return errors.New("name and phone are required")
	}

	found, err := finder.FindBackcall(ctx, name, phone)
	if err != nil {
		return fmt.Errorf("failed to look up backcall: %w", err)
	}
	if !found {
		fmt.Fprintln(out, "not found")
		return ErrBackcallNotFound
	}

	fmt.Fprintln(out, "found")
	return nil
}

// RunFixturePhotos writes the upload images into dir and prints their paths
func RunFixturePhotos(dir string, out io.Writer) error {
	set, err := fixtures.WritePhotos(dir)
	if err != nil {
		return err
	}

	for _, path := range set.Valid {
		fmt.Fprintln(out, path)
	}
	fmt.Fprintln(out, set.Big)
	fmt.Fprintln(out, set.Invalid)
	return nil
}

// RunFixtureCategories prints the category tree as an indented outline
func RunFixtureCategories(out io.Writer) error {
	for _, c := range fixtures.Categories.Categories {
		if _, err := fmt.Fprintln(out, c.Name); err != nil {
			return err
		}
		for _, s := range c.Subcategories {
			fmt.Fprintf(out, "  %s\n", s.Name)
			for _, item := range s.Items {
				fmt.Fprintf(out, "    %s\n", item)
			}
		}
	}
	return nil
}
