// Package content holds the static copy of the landing page.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
)

//go:embed landing.yaml
var landingYAML []byte

// Landing parses the embedded landing page content.
func Landing() (*model.Landing, error) {
	return Parse(landingYAML)
}

// Parse decodes landing page content and checks the fields every page needs.
func Parse(data []byte) (*model.Landing, error) {
	var landing model.Landing
	if err := yaml.Unmarshal(data, &landing); err != nil {
		return nil, fmt.Errorf("parsing landing content: %w", err)
	}
	if landing.Header.Title == "" {
		return nil, fmt.Errorf("landing content: header.title is required")
	}
	for i, ref := range landing.LinksAndReferences {
		if ref.Title == "" || ref.URL == "" {
			return nil, fmt.Errorf("landing content: links_and_references[%d] needs a title and url", i)
		}
	}
	return &landing, nil
}

// TitleWords splits the intro title into the words animated one by one.
func TitleWords(landing *model.Landing) []string {
	return strings.Fields(landing.Header.Title)
}
