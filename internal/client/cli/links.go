package cli

import (
	"context"
	"fmt"
	"strconv"

	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

// Links prints the user's links in display order.
func (a *App) Links(ctx context.Context) error {
	links, err := a.api.Links(ctx)
	if err != nil {
		return err
	}
	printLinks(a.out, links)
	return nil
}

// AddLink prompts for a new link and appends it to the list.
func (a *App) AddLink(ctx context.Context) error {
	var req smodels.NewLink
	var err error

	if req.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if req.URL, err = getSimpleText(a.reader, "URL", a.out); err != nil {
		return err
	}
	if req.Icon, err = getSimpleText(a.reader, "Icon (empty for default)", a.out); err != nil {
		return err
	}
	if req.Color, err = getSimpleText(a.reader, "Color, e.g. #FF5500 (empty for default)", a.out); err != nil {
		return err
	}

	l, err := a.api.AddLink(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added link %s at position %d\n", l.ID, l.Position)
	return nil
}

// EditLink prompts for new values of a link; blank answers keep the
// current value.
func (a *App) EditLink(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("edit <linkId>")
	}

	fields := []string{"Title", "URL", "Icon", "Color"}
	answers := make([]string, len(fields))
	for i, f := range fields {
		v, err := getSimpleText(a.reader, f+" (empty to keep)", a.out)
		if err != nil {
			return err
		}
		answers[i] = v
	}

	patch := smodels.LinkPatch{
		Title: optional(answers[0]),
		URL:   optional(answers[1]),
		Icon:  optional(answers[2]),
		Color: optional(answers[3]),
	}

	l, err := a.api.UpdateLink(ctx, args[0], patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated link %s\n", l.ID)
	return nil
}

// MoveLink places a link at the given 1-based position.
func (a *App) MoveLink(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("move <linkId> <position>")
	}
	pos, err := strconv.Atoi(args[1])
	if err != nil || pos < 1 {
		return usage("move <linkId> <position>, position is a number from 1")
	}

	l, err := a.api.UpdateLink(ctx, args[0], smodels.LinkPatch{Position: &pos})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Link %s is now at position %d\n", l.ID, l.Position)
	return nil
}

// DeleteLink removes a link.
func (a *App) DeleteLink(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <linkId>")
	}
	if err := a.api.DeleteLink(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Link deleted")
	return nil
}
