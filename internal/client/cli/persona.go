package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

// Persona prints a summary of the user's persona.
func (a *App) Persona(ctx context.Context) error {
	p, err := a.api.Persona(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Version %s, confidence %.0f%%, %d samples\n", p.Version, p.ConfidenceScore*100, p.ContentSampleSize)
	fmt.Fprintf(a.out, "Style: %s, %s, %s\n",
		p.CommunicationStyle.Formality, p.CommunicationStyle.Verbosity, p.CommunicationStyle.Expressiveness)

	domains := make([]string, 0, len(p.KnowledgeDomains))
	for name := range p.KnowledgeDomains {
		domains = append(domains, name)
	}
	sort.Strings(domains)
	for _, name := range domains {
		d := p.KnowledgeDomains[name]
		fmt.Fprintf(a.out, "  %-20s expertise %.2f  %s\n", name, d.ExpertiseLevel, strings.Join(d.Keywords, ", "))
	}
	return nil
}

// UpdatePersona asks the server to rebuild the persona.
func (a *App) UpdatePersona(ctx context.Context) error {
	st, err := a.api.UpdatePersona(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s, about %s)\n", st.Message, st.Status, st.EstimatedCompletionTime)
	return nil
}

// Sources lists connected content sources.
func (a *App) Sources(ctx context.Context) error {
	src, err := a.api.Sources(ctx)
	if err != nil {
		return err
	}
	printSources(a.out, src)
	return nil
}

// AddSource prompts for a source type and the account (or blog URL) and
// connects it.
func (a *App) AddSource(ctx context.Context) error {
	typ, err := getSimpleText(a.reader, "Source type (twitter, linkedin, github, blog, ...)", a.out)
	if err != nil {
		return err
	}

	req := smodels.NewContentSource{Type: strings.ToLower(typ)}
	if req.Type == smodels.SourceTypeBlog {
		req.URL, err = getSimpleText(a.reader, "Blog URL", a.out)
	} else {
		req.Username, err = getSimpleText(a.reader, "Username", a.out)
	}
	if err != nil {
		return err
	}

	s, err := a.api.AddSource(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Connected %s source %s\n", s.Type, s.ID)
	return nil
}
