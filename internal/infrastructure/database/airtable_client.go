package database

import (
	"errors"
	"strings"

	"github.com/mehanizm/airtable"
	"github.com/sirupsen/logrus"
)

var ErrAirtableNotConfigured = errors.New("airtable not configured")

// ConnectAirtable creates the store client. baseURL is optional and only set
// when pointing at a proxy or a local fake.
func ConnectAirtable(pat, baseURL string, logg *logrus.Logger) (*airtable.Client, error) {
	if strings.TrimSpace(pat) == "" {
		logg.Warn("[store][airtable] missing AIRTABLE_PAT")
		return nil, ErrAirtableNotConfigured
	}

	client := airtable.NewClient(pat)
	if baseURL != "" {
		if err := client.SetBaseURL(baseURL); err != nil {
			logg.WithError(err).Error("[store][airtable] invalid base url")
			return nil, err
		}
	}
	logg.Info("[store][airtable] client initialized")
	return client, nil
}
