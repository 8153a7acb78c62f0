package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/parasearch/internal/client/client"
	"github.com/dmitrijs2005/parasearch/internal/client/models"
	"github.com/dmitrijs2005/parasearch/internal/common"
)

var (
	// ErrEmptySearchTerm is returned, without contacting the backend, for a
	// blank search word.
	ErrEmptySearchTerm = errors.New("empty search term")
	// ErrEmptyContent is returned, without contacting the backend, for blank text.
	ErrEmptyContent = errors.New("empty content")
)

// ParagraphService submits text and searches it by word.
type ParagraphService interface {
	// Submit sends text holding one or more paragraphs separated by blank lines.
	Submit(ctx context.Context, content string) (string, error)
	// Search trims and lower-cases word before asking the backend.
	Search(ctx context.Context, word string) ([]models.Paragraph, error)
}

type paragraphService struct {
	client client.Client
}

func NewParagraphService(c client.Client) ParagraphService {
	return &paragraphService{client: c}
}

func (p *paragraphService) Submit(ctx context.Context, content string) (string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	return p.client.SubmitParagraphs(ctx, content)
}

func (p *paragraphService) Search(ctx context.Context, word string) ([]models.Paragraph, error) {
	term := common.NormalizeTerm(word)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}
	return p.client.SearchParagraphs(ctx, term)
}
