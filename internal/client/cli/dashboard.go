package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/parasearch/internal/client/client"
	"github.com/dmitrijs2005/parasearch/internal/client/services"
	"github.com/dmitrijs2005/parasearch/internal/common"
)

var getParagraphs = GetParagraphs

// Submit reads paragraphs from the user and sends them to the backend.
// A successful submission forgets the previous search results, since they
// may no longer reflect what is stored.
func (a *App) Submit(ctx context.Context) error {
	text, err := getParagraphs(a.reader, "Enter text", a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	fmt.Fprintln(a.out, "Submitting...")
	msg, err := a.paragraphs.Submit(ctx, text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyContent) {
			fmt.Fprintln(a.out, "Nothing to submit.")
			return err
		}
		a.logger.Warn(ctx, "submit failed", "error", err)
		fmt.Fprintln(a.out, client.MessageOr(err, "Submission failed", "message"))
		return err
	}

	a.logger.Info(ctx, "paragraphs submitted", "bytes", len(text), "message", msg)
	a.results, a.lastTerm = nil, ""
	fmt.Fprintln(a.out, "Paragraphs submitted successfully!")
	return nil
}

// Search looks word up and prints the matching paragraphs. A blank word
// prints usage and makes no request.
func (a *App) Search(ctx context.Context, word string) error {
	term := common.NormalizeTerm(word)
	if term == "" {
		fmt.Fprintln(a.out, "Usage: search <word>")
		return services.ErrEmptySearchTerm
	}

	fmt.Fprintln(a.out, "Searching...")
	found, err := a.paragraphs.Search(ctx, term)
	if err != nil {
		a.logger.Warn(ctx, "search failed", "term", term, "error", err)
		fmt.Fprintln(a.out, client.MessageOr(err, "Search failed", "error"))
		return err
	}

	a.logger.Debug(ctx, "search done", "term", term, "results", len(found))
	a.lastTerm, a.results = term, found
	a.printResults()
	return nil
}

// Results prints the outcome of the last search again.
func (a *App) Results(_ context.Context) error {
	if a.lastTerm == "" {
		fmt.Fprintln(a.out, "No search yet. Use 'search <word>'.")
		return nil
	}
	a.printResults()
	return nil
}

func (a *App) printResults() {
	if len(a.results) == 0 {
		fmt.Fprintln(a.out, "No paragraphs found containing the word.")
		return
	}

	fmt.Fprintf(a.out, "Found %d paragraph(s) containing %q:\n", len(a.results), a.lastTerm)
	for _, p := range a.results {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, p.String())
	}
}
