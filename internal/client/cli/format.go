package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

var errUsage = errors.New("usage")

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

func printUser(w io.Writer, u *smodels.UserView) {
	fmt.Fprintf(w, "ID:     %s\n", u.ID)
	fmt.Fprintf(w, "Name:   %s\n", u.Name)
	fmt.Fprintf(w, "Email:  %s\n", u.Email)
	fmt.Fprintf(w, "Bio:    %s\n", u.Bio)
	fmt.Fprintf(w, "Avatar: %s\n", u.AvatarURL)
}

func printLinks(w io.Writer, links []smodels.Link) {
	if len(links) == 0 {
		fmt.Fprintln(w, "No links yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tTITLE\tURL\tCLICKS")
	for _, l := range links {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", l.Position, l.ID, l.Title, l.URL, l.ClickCount)
	}
	_ = tw.Flush()
}

func printPublicProfile(w io.Writer, p *smodels.PublicProfile) {
	fmt.Fprintf(w, "%s\n", p.Name)
	if p.Bio != "" {
		fmt.Fprintf(w, "%s\n", p.Bio)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range p.Links {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", l.Position, l.ID, l.Title, l.URL)
	}
	_ = tw.Flush()
}

func printSources(w io.Writer, src []smodels.ContentSource) {
	if len(src) == 0 {
		fmt.Fprintln(w, "No sources connected")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tACCOUNT\tSTATUS\tUPDATED")
	for _, s := range src {
		account := s.Username
		if account == "" {
			account = s.URL
		}
		updated := "-"
		if s.LastUpdated != nil {
			updated = s.LastUpdated.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Type, account, s.Status, updated)
	}
	_ = tw.Flush()
}

func printMessage(w io.Writer, m smodels.ChatMessage) {
	who := "you"
	if m.Sender == smodels.SenderAgent {
		who = "agent"
	}
	fmt.Fprintf(w, "[%s] %s: %s\n", m.Timestamp.Format("15:04"), who, m.Text)
}

// optional returns nil for blank input so PATCH-style requests leave the
// field untouched.
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
