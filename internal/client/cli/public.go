package cli

import (
	"context"
	"fmt"
)

// View prints someone's public profile.
func (a *App) View(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("view <userId>")
	}
	p, err := a.api.PublicProfile(ctx, args[0])
	if err != nil {
		return err
	}
	printPublicProfile(a.out, p)
	return nil
}

// Click registers a click on a public link and prints the new count.
func (a *App) Click(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("click <userId> <linkId>")
	}
	n, err := a.api.Click(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Clicks: %d\n", n)
	return nil
}
