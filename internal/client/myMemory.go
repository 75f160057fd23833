package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/druvus/vocabulator/internal/models"
)

type MyMemoryAPI struct{}

func NewMyMemoryAPI() *MyMemoryAPI {
	return &MyMemoryAPI{}
}

// Translate looks text up in the MyMemory translation memory. A lookup
// the service cannot satisfy returns an empty string, not an error;
// callers treat a missing translation as a soft failure.
func (m *MyMemoryAPI) Translate(ctx context.Context, text, srcCode, destCode string) (string, error) {
	url := fmt.Sprintf(
		"https://api.mymemory.translated.net/get?q=%s&langpair=%s|%s",
		url.QueryEscape(text), srcCode, destCode,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}

	if data.ResponseBody.ResponseStatus != 200 {
		return "", nil
	}

	return data.ResponseBody.TranslatedText, nil
}
