package services

import (
	"context"

	"github.com/dmitrijs2005/parasearch/internal/client/models"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	tokenRet string
	tokenErr error
	lastCred models.Credentials

	registerErr  error
	lastRegister *models.Registration

	submitRet  string
	submitErr  error
	lastSubmit *string

	searchRet  []models.Paragraph
	searchErr  error
	lastSearch *string
}

func (f *fakeClient) ObtainToken(_ context.Context, creds models.Credentials) (string, error) {
	f.lastCred = models.Credentials{Email: creds.Email, Password: append([]byte(nil), creds.Password...)}
	return f.tokenRet, f.tokenErr
}

func (f *fakeClient) Register(_ context.Context, reg models.Registration) error {
	f.lastRegister = &reg
	return f.registerErr
}

func (f *fakeClient) SubmitParagraphs(_ context.Context, content string) (string, error) {
	f.lastSubmit = &content
	return f.submitRet, f.submitErr
}

func (f *fakeClient) SearchParagraphs(_ context.Context, word string) ([]models.Paragraph, error) {
	f.lastSearch = &word
	return f.searchRet, f.searchErr
}
