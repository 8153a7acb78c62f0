package client

import (
	"context"

	"github.com/dmitrijs2005/parasearch/internal/client/models"
)

// Client is the backend API as seen by the services.
type Client interface {
	// ObtainToken exchanges credentials for an access token. It does not store it.
	ObtainToken(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, reg models.Registration) error
	// SubmitParagraphs sends raw text; the backend splits it on blank lines.
	// It returns the backend's confirmation message.
	SubmitParagraphs(ctx context.Context, content string) (string, error)
	// SearchParagraphs sends word unchanged as the "word" query parameter.
	SearchParagraphs(ctx context.Context, word string) ([]models.Paragraph, error)
}
